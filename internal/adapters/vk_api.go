package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vkstatus/internal/types"
)

const (
	defaultBaseURL    = "https://api.vk.com"
	defaultAPIVersion = "5.131"
	defaultLanguage   = "en"
	defaultTimeout    = 10 * time.Second
)

// VKAPIAdapter talks to the VK REST API. Only users.get is needed.
type VKAPIAdapter struct {
	BaseURL     string
	AccessToken string
	APIVersion  string
	Language    string
	Client      *http.Client
}

type VKAPIConfig struct {
	BaseURL     string
	AccessToken string
	APIVersion  string
	Language    string
	Timeout     time.Duration
}

func NewVKAPIAdapter(cfg VKAPIConfig) VKAPIAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return VKAPIAdapter{
		BaseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		AccessToken: cfg.AccessToken,
		APIVersion:  cfg.APIVersion,
		Language:    cfg.Language,
		Client:      &http.Client{Timeout: cfg.Timeout},
	}
}

// wire shapes of the users.get response envelope
type usersGetEnvelope struct {
	Response []userPayload `json:"response"`
	Error    *apiError     `json:"error"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

type userPayload struct {
	ID         int64            `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	ScreenName string           `json:"screen_name"`
	Online     int              `json:"online"`
	LastSeen   *lastSeenPayload `json:"last_seen"`
}

type lastSeenPayload struct {
	Time     int64 `json:"time"`
	Platform int   `json:"platform"`
}

func (a VKAPIAdapter) UsersGet(ctx context.Context, ids []string, fields []string) ([]types.User, error) {
	if len(ids) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one user id is required")
	}
	query := url.Values{}
	query.Set("user_ids", strings.Join(ids, ","))
	query.Set("fields", strings.Join(fields, ","))
	query.Set("lang", a.Language)
	query.Set("v", a.APIVersion)
	if a.AccessToken != "" {
		query.Set("access_token", a.AccessToken)
	}
	endpoint := fmt.Sprintf("%s/method/users.get?%s", a.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to build users.get request").
			WithCause(err)
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("vk api unreachable").
			WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read users.get response").
			WithCause(err)
	}
	var envelope usersGetEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid api response").
			WithCause(err)
	}
	if envelope.Error != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("vk api error %d: %s", envelope.Error.Code, envelope.Error.Message))
	}
	if len(envelope.Response) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no users in response")
	}
	users := make([]types.User, 0, len(envelope.Response))
	for _, payload := range envelope.Response {
		users = append(users, payload.toUser())
	}
	return users, nil
}

func (p userPayload) toUser() types.User {
	user := types.User{
		UID:        p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		ScreenName: p.ScreenName,
		Online:     p.Online != 0,
	}
	if p.LastSeen != nil && p.LastSeen.Time > 0 {
		user.LastSeen = types.LastSeen{
			Time:     time.Unix(p.LastSeen.Time, 0).UTC(),
			Platform: types.Platform(p.LastSeen.Platform),
		}
	}
	return user
}
