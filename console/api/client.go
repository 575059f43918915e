package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

var (
	ErrServerBadRequest       = errors.New("server responded with bad request")
	ErrServerNotFound         = errors.New("server responded with not found")
	ErrServerError            = errors.New("server responded server error")
	ErrServerUnexpectedStatus = errors.New("server responded with unexpected status")
)

const sessionHeader = "X-Session-Token"

type Client interface {
	ListChildren(ctx context.Context) ([]Child, error)
	GetChild(ctx context.Context, childId int64) (Child, error)
	GetChildByDevice(ctx context.Context, deviceId int64) (Child, error)
	AddChild(ctx context.Context, child Child) (Child, error)
	UpdateChild(ctx context.Context, child Child) (Child, error)
	DeleteChild(ctx context.Context, childId int64) error
	ListDevices(ctx context.Context) ([]Device, error)
}

type DefaultClient struct {
	protocol, hostname string
	sessionToken       string
}

func NewDefaultClient(protocol, hostname, sessionToken string) *DefaultClient {
	return &DefaultClient{
		protocol:     protocol,
		hostname:     hostname,
		sessionToken: sessionToken,
	}
}

func (c *DefaultClient) ListChildren(ctx context.Context) ([]Child, error) {
	children := []Child{}
	if err := c.getJSON(ctx, "/api/savekid/children", &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (c *DefaultClient) GetChild(ctx context.Context, childId int64) (Child, error) {
	child := Child{}
	err := c.getJSON(ctx, fmt.Sprintf("/api/savekid/children/%d", childId), &child)
	return child, err
}

func (c *DefaultClient) GetChildByDevice(ctx context.Context, deviceId int64) (Child, error) {
	child := Child{}
	err := c.getJSON(ctx, fmt.Sprintf("/api/savekid/children/by-device/%d", deviceId), &child)
	return child, err
}

func (c *DefaultClient) AddChild(ctx context.Context, child Child) (Child, error) {
	return c.sendChild(ctx, http.MethodPost, "/api/savekid/children", child)
}

func (c *DefaultClient) UpdateChild(ctx context.Context, child Child) (Child, error) {
	return c.sendChild(ctx, http.MethodPut, fmt.Sprintf("/api/savekid/children/%d", child.Id), child)
}

func (c *DefaultClient) DeleteChild(ctx context.Context, childId int64) error {
	req, err := c.newRequest(http.MethodDelete, fmt.Sprintf("/api/savekid/children/%d", childId), nil)
	if err != nil {
		return err
	}

	resp, err := c.performRequest(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to perform request")
	}
	resp.Body.Close()
	return nil
}

func (c *DefaultClient) ListDevices(ctx context.Context) ([]Device, error) {
	devices := []Device{}
	if err := c.getJSON(ctx, "/api/devices", &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (c *DefaultClient) sendChild(ctx context.Context, method, path string, child Child) (Child, error) {
	requestBody, err := json.Marshal(child)
	if err != nil {
		return Child{}, errors.Wrap(err, "failed to json encode the child")
	}

	req, err := c.newRequest(method, path, bytes.NewReader(requestBody))
	if err != nil {
		return Child{}, err
	}

	resp, err := c.performRequest(ctx, req)
	if err != nil {
		return Child{}, errors.Wrap(err, "failed to perform request")
	}
	defer resp.Body.Close()

	ret := Child{}
	if err := json.NewDecoder(resp.Body).Decode(&ret); err != nil {
		return Child{}, errors.Wrap(err, "failed to decode json response")
	}
	return ret, nil
}

func (c *DefaultClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.performRequest(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to perform request")
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode json response")
	}
	return nil
}

func (c *DefaultClient) newRequest(method, path string, body *bytes.Reader) (*http.Request, error) {
	requestUrl := url.URL{Scheme: c.protocol, Host: c.hostname, Path: path}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, requestUrl.String(), body)
	} else {
		req, err = http.NewRequest(method, requestUrl.String(), nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	if c.sessionToken != "" {
		req.Header.Set(sessionHeader, c.sessionToken)
	}
	return req, nil
}

func (c *DefaultClient) performRequest(ctx context.Context, r *http.Request) (*http.Response, error) {
	r = r.WithContext(ctx)
	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute the http request")
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusNotFound:
		err = ErrServerNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		err = ErrServerBadRequest
	case resp.StatusCode >= 500:
		err = ErrServerError
	default:
		err = ErrServerUnexpectedStatus
	}
	defer resp.Body.Close()

	b, _ := ioutil.ReadAll(resp.Body)
	return nil, errors.Wrapf(err, "server responded with status code %v, body: %s", resp.StatusCode, b)
}
