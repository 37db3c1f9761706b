package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// userService implements app.UserService. The source is either a local file
// path or an absolute http(s) URL.
type userService struct {
	client *Client
	source string
}

// NewUserService creates a UserService reading from source.
func NewUserService(client *Client, source string) *userService {
	return &userService{client: client, source: strings.TrimSpace(source)}
}

type apiUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s *userService) FetchUsers(ctx context.Context) ([]domain.User, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, domain.NewFetchError("users", err)
	}

	var raw []apiUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewFetchError("users", fmt.Errorf("parsing users: %w", err))
	}

	users := make([]domain.User, 0, len(raw))
	for _, u := range raw {
		users = append(users, domain.User{ID: u.ID, Name: sanitizeText(u.Name)})
	}
	return users, nil
}

func (s *userService) read(ctx context.Context) ([]byte, error) {
	if s.source == "" {
		return nil, fmt.Errorf("no users source configured")
	}
	if isRemote(s.source) {
		if s.client == nil {
			return nil, fmt.Errorf("no http client for %s", s.source)
		}
		return s.client.GetURL(ctx, s.source)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.source, err)
	}
	return data, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
