package ports

import "vkstatus/internal/types"

type WatchListPort interface {
	LoadWatchList(path string) (types.WatchList, error)
}
