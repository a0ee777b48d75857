package adapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, _ := strconv.Atoi(r.URL.Query().Get("code"))
		w.WriteHeader(code)
		if r.URL.Query().Get("body") != "" {
			_, _ = w.Write([]byte(r.URL.Query().Get("body")))
		}
	}))
	defer srv.Close()

	tests := []struct {
		code int
		body string
		want error
		msg  string
	}{
		{code: http.StatusOK},
		{code: http.StatusCreated},
		{code: http.StatusBadRequest, want: ErrBadRequest},
		{code: http.StatusUnauthorized, want: ErrUnauthorized},
		{code: http.StatusForbidden, want: ErrForbidden},
		{code: http.StatusNotFound, body: "no such doc", want: ErrNotFound, msg: "no such doc"},
		{code: http.StatusConflict, want: ErrConflict},
		{code: http.StatusBadGateway, want: ErrBadGateway},
		{code: http.StatusInternalServerError, want: ErrInternalServerError},
		{code: http.StatusTeapot, msg: "http 418: I'm a teapot"},
		{code: http.StatusServiceUnavailable, body: "maintenance", msg: "http 503: maintenance"},
	}

	client := resty.New()
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.code), func(t *testing.T) {
			resp, err := client.R().
				SetQueryParam("code", strconv.Itoa(tt.code)).
				SetQueryParam("body", tt.body).
				Get(srv.URL)
			require.NoError(t, err)

			got := mapHTTPError(resp)
			if tt.want == nil && tt.msg == "" {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			if tt.want != nil {
				assert.True(t, errors.Is(got, tt.want))
			}
			if tt.msg != "" {
				assert.Contains(t, got.Error(), tt.msg)
			}
		})
	}
}
