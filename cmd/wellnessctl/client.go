package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

func newClient() *resty.Client {
	c := resty.New().SetBaseURL(apiFlag)
	if userFlag != "" {
		c.SetHeader("X-User-ID", userFlag)
	}
	if tokenFlag != "" {
		c.SetAuthToken(tokenFlag)
	}
	return c
}

func doGet(path string) (string, error) {
	resp, err := newClient().R().Get(path)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.String(), nil
}

func doPostJSON(path string, payload interface{}) (string, error) {
	resp, err := newClient().R().SetBody(payload).Post(path)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.String(), nil
}

func doPutJSON(path string, payload interface{}) (string, error) {
	resp, err := newClient().R().SetBody(payload).Put(path)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.String(), nil
}
