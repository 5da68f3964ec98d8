package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/creatorlens/creatorlens/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return nil
}

// Binder binds and immediately validates the request payload.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.base.Bind(i, ctx); err != nil {
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return ctx.Validate(i)
}

// JSONSerializer swaps echo's encoding/json for sonic.
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(ctx echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JSONSerializer) Deserialize(ctx echo.Context, i interface{}) error {
	err := sonic.ConfigDefault.NewDecoder(ctx.Request().Body).Decode(i)
	if err == io.EOF {
		return nil
	}
	return err
}
