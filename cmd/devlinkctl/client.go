package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const tokenHeader = "x-auth-token"

func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	if tokenFlag != "" {
		c.SetHeader(tokenHeader, tokenFlag)
	}
	return c
}

// checkResp turns non-2xx responses into errors carrying the body, so
// the server's validation messages surface on the terminal.
func checkResp(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
