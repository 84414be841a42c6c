package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"vkstatus/internal/types"
)

type WatchFileAdapter struct{}

func NewWatchFileAdapter() WatchFileAdapter {
	return WatchFileAdapter{}
}

func (a WatchFileAdapter) LoadWatchList(path string) (types.WatchList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.WatchList{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("watch file not found").
			WithCause(err)
	}
	var list types.WatchList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return types.WatchList{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse watch file yaml").
			WithCause(err)
	}
	if len(list.Users) == 0 {
		return types.WatchList{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("watch file lists no users")
	}
	return list, nil
}
