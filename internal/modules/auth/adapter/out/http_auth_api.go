package out

import (
	"context"
	"net/url"

	authout "lbtui/internal/modules/auth/port/out"
	"lbtui/internal/platform/httpapi"
)

type HTTPAuthAPI struct {
	client *httpapi.Client
}

func NewHTTPAuthAPI(client *httpapi.Client) authout.AuthAPI {
	return &HTTPAuthAPI{client: client}
}

func (a *HTTPAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := a.client.PostForm(ctx, "/token", form, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (a *HTTPAuthAPI) Signup(ctx context.Context, username, email, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp struct {
		Username string `json:"username"`
	}
	if err := a.client.Do(ctx, "POST", "/signup", body, &resp); err != nil {
		return "", err
	}
	return resp.Username, nil
}
