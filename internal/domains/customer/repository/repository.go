package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"
	"github.com/NikQuila/website-gocar-sub000/infras/supabase"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	gDto "github.com/NikQuila/website-gocar-sub000/shared/dto"
	gRepo "github.com/NikQuila/website-gocar-sub000/shared/repository"
)

const rpcInitializeCustomer = "initialize_customer"

var ErrNotFound = errors.New("customer not found")

type Customer interface {
	Initialize(ctx context.Context, form dto.CustomerForm) (model.Customer, error)
	FindByEmail(ctx context.Context, clientID, email string) (model.Row, error)
	FindByRef(ctx context.Context, clientID string, ref model.Ref) (model.Row, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Row]
	rpc  supabase.Client
	otel otel.Otel
}

func New(db *postgres.Connection, rpc supabase.Client, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Row](model.EntityName, model.TableName, db, otel),
		rpc:        rpc,
		otel:       otel,
	}
}

type initializeParams struct {
	ClientID  string `json:"p_client_id"`
	FirstName string `json:"p_first_name"`
	LastName  string `json:"p_last_name"`
	Email     string `json:"p_email"`
	Phone     string `json:"p_phone"`
}

type initializeResult struct {
	ID json.RawMessage `json:"id"`
}

// refFromJSON accepts the id either as a JSON string or a JSON number.
func refFromJSON(raw json.RawMessage) (model.Ref, error) {
	raw = bytes.TrimSpace(raw)

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return model.ParseRef(text)
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return model.Ref{}, fmt.Errorf("%w: %s", model.ErrInvalidRef, string(raw))
	}

	return model.IntegerRef(id), nil
}

func (r *repositoryImpl) Initialize(ctx context.Context, form dto.CustomerForm) (res model.Customer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.Initialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	form = form.Normalize()

	params := initializeParams{
		ClientID:  form.ClientID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
	}

	var raw json.RawMessage
	if err = r.rpc.Call(ctx, rpcInitializeCustomer, params, &raw); err != nil {
		return res, fmt.Errorf("failed to initialize customer: %w", err)
	}

	// the procedure returns either the row or a one-row set
	var rows []initializeResult
	if err = json.Unmarshal(raw, &rows); err != nil {
		var row initializeResult
		if err = json.Unmarshal(raw, &row); err != nil {
			return res, fmt.Errorf("failed to decode initialized customer: %w", err)
		}

		rows = []initializeResult{row}
	}

	if len(rows) == 0 || len(rows[0].ID) == 0 {
		return res, fmt.Errorf("initialize customer returned no id: %w", supabase.ErrUnreadableResponse)
	}

	ref, err := refFromJSON(rows[0].ID)
	if err != nil {
		return res, err
	}

	return form.ToModel(ref), nil
}

func (r *repositoryImpl) find(ctx context.Context, filter gDto.FilterGroup) (model.Row, error) {
	row, err := r.Get(ctx, filter)
	if errors.Is(err, sql.ErrNoRows) {
		return row, ErrNotFound
	}

	return row, err //nolint:wrapcheck
}

func (r *repositoryImpl) FindByEmail(ctx context.Context, clientID, email string) (model.Row, error) {
	return r.find(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldClientID, Value: clientID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

func (r *repositoryImpl) FindByRef(ctx context.Context, clientID string, ref model.Ref) (model.Row, error) {
	idFilter := gDto.Filter{Field: model.FieldID, Value: ref.String(), Operator: gDto.FilterOperatorEq, Table: model.TableName}
	if id, ok := ref.Integer(); ok {
		idFilter = gDto.Filter{Field: model.FieldLegacyID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName}
	}

	return r.find(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldClientID, Value: clientID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			idFilter,
		},
	})
}
