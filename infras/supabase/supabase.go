package supabase

//go:generate go run go.uber.org/mock/mockgen -source=./supabase.go -destination=./mocks/supabase_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/rs/zerolog/log"
	supa "github.com/supabase-community/supabase-go"
)

const otelAttrFunction = "rpc.function"

var ErrUnreadableResponse = errors.New("unreadable rpc response")

// Error is the error envelope the backend returns for a failed RPC.
type Error struct {
	Function string `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Details  string `json:"details"`
	Hint     string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("rpc %s failed: %s", e.Function, e.Message)
	}

	return fmt.Sprintf("rpc %s failed (%s): %s", e.Function, e.Code, e.Message)
}

// HasCode reports whether err is an RPC error carrying one of codes.
func HasCode(err error, codes ...string) bool {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return slices.Contains(codes, rpcErr.Code)
	}

	return false
}

// Client invokes the backend's named remote procedures.
type Client interface {
	Call(ctx context.Context, function string, params any, out any) error
}

type clientImpl struct {
	client *supa.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	var options *supa.ClientOptions
	if cfg.Backend.Schema != "" {
		options = &supa.ClientOptions{Schema: cfg.Backend.Schema}
	}

	client, err := supa.NewClient(cfg.Backend.URL, cfg.Backend.ServiceKey, options)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create backend client")
	}

	log.Info().Str("url", cfg.Backend.URL).Msg("Backend client initialized")

	return &clientImpl{
		client: client,
		otel:   otel,
	}
}

// Call runs the procedure and decodes its JSON result into out. The
// underlying client is not context aware, so cancellation only stops waiting.
func (c *clientImpl) Call(ctx context.Context, function string, params any, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRPCScopeName, constant.OtelRPCScopeName+"."+function)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrFunction, function)

	result := make(chan string, 1)

	go func() {
		result <- c.client.Rpc(function, "", params)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rpc %s: %w", function, ctx.Err())
	case body := <-result:
		err = Decode(function, body, out)
		if err != nil {
			log.Error().Err(err).Str("function", function).Msg("rpc call failed")
		}

		return err
	}
}

// Decode turns a raw RPC body into out, or into an *Error when the body is
// an error envelope. The client reports transport failures as an empty
// body, so every procedure must return JSON and an empty or non-JSON body
// is an error even when out is nil.
func Decode(function, body string, out any) error {
	trimmed := strings.TrimSpace(body)

	if trimmed == "" {
		return fmt.Errorf("rpc %s returned an empty body: %w", function, ErrUnreadableResponse)
	}

	if !json.Valid([]byte(trimmed)) {
		return fmt.Errorf("rpc %s returned a non-JSON body: %w", function, ErrUnreadableResponse)
	}

	if strings.HasPrefix(trimmed, "{") {
		var envelope Error
		if json.Unmarshal([]byte(trimmed), &envelope) == nil && (envelope.Code != "" || envelope.Message != "") {
			envelope.Function = function

			return &envelope
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return fmt.Errorf("rpc %s: %w: %s", function, ErrUnreadableResponse, err.Error())
	}

	return nil
}
