package children

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/blacdimirr/traccarsavekid/shared"
	"github.com/blacdimirr/traccarsavekid/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var (
	ErrBadRouting = errors.New("inconsistent mapping between route and handler (programmer error)")
	ErrInvalidId  = errors.New("route id is not numeric")
)

type ChildTransport struct {
	Id         int64            `json:"id,omitempty"`
	Name       string           `json:"name"`
	LastName   string           `json:"lastName"`
	BirthDate  string           `json:"birthDate,omitempty"`
	Height     *float64         `json:"height"`
	Weight     *float64         `json:"weight"`
	Conditions string           `json:"conditions,omitempty"`
	DeviceId   int64            `json:"deviceId,omitempty"`
	BaseHealth *HealthTransport `json:"baseHealth,omitempty"`
	CreatedAt  string           `json:"createdAt,omitempty"`
	UpdatedAt  string           `json:"updatedAt,omitempty"`
}

type HealthTransport struct {
	HeartRate   *float64 `json:"heartRate"`
	Temperature *float64 `json:"temperature"`
	Steps       *float64 `json:"steps"`
	Sleep       *float64 `json:"sleep"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Add(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddEndpoint(h.Service),
		decodeChildTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) Get(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeGetEndpoint(h.Service),
		decodeChildIdRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) GetByDevice(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeGetByDeviceEndpoint(h.Service),
		decodeDeviceIdRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Update(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUpdateEndpoint(h.Service),
		decodeUpdateChildRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Delete(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeDeleteEndpoint(h.Service),
		decodeChildIdRequest,
		shared.EncodeResponse204,
		opts...,
	)
}

func (h *HandlerFactory) List(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeAddEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		return svc.AddChild(ctx, req)
	}
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		childId := request.(int64)
		return svc.GetChild(ctx, childId)
	}
}

func makeGetByDeviceEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		deviceId := request.(int64)
		return svc.GetChildByDevice(ctx, deviceId)
	}
}

func makeUpdateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		return svc.UpdateChild(ctx, req)
	}
}

func makeDeleteEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		childId := request.(int64)
		if err := svc.DeleteChild(ctx, childId); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return svc.ListChildren(ctx)
	}
}

func decodeChildTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request ChildTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeChildIdRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return decodeIdVar(r, "childId")
}

func decodeDeviceIdRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return decodeIdVar(r, "deviceId")
}

func decodeUpdateChildRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := decodeIdVar(r, "childId")
	if err != nil {
		return nil, err
	}

	var request ChildTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	request.Id = id.(int64)
	return request, nil
}

func decodeIdVar(r *http.Request, name string) (interface{}, error) {
	vars := mux.Vars(r)
	raw, ok := vars[name]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidId, "invalid %s: %s", name, raw)
	}
	return id, nil
}

func ignorePayload(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

// encode errors from business-logic
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch errors.Cause(err) {
	case ErrEmptyChild, ErrInvalidId, ErrInvalidBirthDate, ErrInvalidDevice:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrChildNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
