package sdk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/andreabenini/BotLibre/pkg/message"
	"github.com/andreabenini/BotLibre/pkg/transport"
)

// RequestIDHeader carries the per-call correlation id
const RequestIDHeader = "X-Request-ID"

// call runs a typed operation and returns its decoded result.
// A nil result with a nil error means the server sent no body, or the
// failure was swallowed in lenient mode.
func call[R message.Serializable](ctx context.Context, c *Connection, op Operation, cfg message.Serializable) (R, error) {
	var zero R
	out, err := c.invoke(ctx, op, cfg, "", nil)
	if err != nil || out == nil {
		return zero, err
	}
	r, ok := out.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s: unexpected result %T", ErrDeserialization, op, out)
	}
	return r, nil
}

// void runs an operation whose response body is discarded
func (c *Connection) void(ctx context.Context, op Operation, cfg message.Serializable) error {
	_, err := c.invoke(ctx, op, cfg, "", nil)
	return err
}

// invoke looks up op in the endpoint table and runs it. result, when set,
// replaces the table's result constructor.
func (c *Connection) invoke(ctx context.Context, op Operation, cfg message.Serializable, api string, result message.Serializable) (any, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	out, err := c.run(ctx, op, ep, cfg, api, result)
	if err != nil {
		if ep.effect == connectUser {
			c.SetUser(nil)
		}
		return nil, c.fail(op, ep, err)
	}
	c.setLastError(nil)
	return out, nil
}

func (c *Connection) run(ctx context.Context, op Operation, ep endpoint, cfg message.Serializable, api string, result message.Serializable) (any, error) {
	body, err := c.exchange(ctx, op, ep, cfg, api)
	if err != nil {
		return nil, err
	}

	switch ep.kind {
	case resultVoid:
		return nil, nil
	case resultRaw:
		return string(body), nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		if ep.effect == connectUser {
			c.SetUser(nil)
		}
		return nil, nil
	}

	if ep.kind == resultDocument {
		doc, err := message.ParseDocument(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDeserialization, op, err)
		}
		return doc, nil
	}

	if result == nil && ep.result != nil {
		result = ep.result()
	}
	if result == nil {
		return nil, nil
	}
	if err := result.ParseXML(body); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeserialization, op, err)
	}

	if ep.effect == connectUser || ep.effect == createUser {
		if user, ok := result.(*message.UserConfig); ok {
			user.StripSecrets()
			c.SetUser(user)
		}
	}
	return result, nil
}

// exchange attaches the credentials to cfg, encodes it and sends it to the
// endpoint. It returns the raw response body.
func (c *Connection) exchange(ctx context.Context, op Operation, ep endpoint, cfg message.Serializable, api string) ([]byte, error) {
	if isNil(cfg) {
		return nil, fmt.Errorf("%w: %s: config is required", ErrInvalidArgument, op)
	}

	path, err := ep.resolve(cfg, api)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	creds, auth := c.session()
	cfg.AddCredentials(auth)

	data, err := cfg.ToXML()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSerialization, op, err)
	}

	req := transport.NewPOST(creds.Endpoint(path), data)
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	debug := c.Debug()
	logger := c.logger.With("op", string(op), "request_id", requestID)
	if debug {
		logger.Info("sending request", "url", req.URL, "body", message.Indent(data))
	}

	body, err := c.transport.Send(ctx, req)
	if err != nil {
		if debug {
			logger.Info("request failed", "url", req.URL, "error", err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}

	if debug {
		logger.Info("received response", "url", req.URL, "body", message.Indent(body))
	}
	return body, nil
}

// fail records err and decides whether it reaches the caller
func (c *Connection) fail(op Operation, ep endpoint, err error) error {
	c.setLastError(err)

	if alwaysReturned(err) || c.errorMode == ErrorModeStrict {
		return err
	}
	// A malformed admin list is never reported as an empty one
	if ep.kind == resultDocument && errors.Is(err, ErrDeserialization) {
		return err
	}

	c.logger.Warn("operation failed", "op", string(op), "error", err)
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
