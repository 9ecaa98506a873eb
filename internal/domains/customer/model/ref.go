package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidRef = errors.New("customer id is neither a uuid nor an integer")

type RefKind string

const (
	RefKindUUID    RefKind = "uuid"
	RefKindInteger RefKind = "integer"
)

// Ref identifies a customer by one of the two id representations the
// backend accepts. The shape is decided once, when the ref is built.
type Ref struct {
	kind    RefKind
	uuid    string
	integer int64
}

func UUIDRef(id uuid.UUID) Ref {
	return Ref{kind: RefKindUUID, uuid: id.String()}
}

func IntegerRef(id int64) Ref {
	return Ref{kind: RefKindInteger, integer: id}
}

// ParseRef classifies a raw identifier as a uuid or an integer id.
func ParseRef(raw string) (Ref, error) {
	raw = strings.TrimSpace(raw)

	if id, err := uuid.Parse(raw); err == nil {
		return UUIDRef(id), nil
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		return IntegerRef(id), nil
	}

	return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, raw)
}

// ParseTypedRef rebuilds a ref whose kind is already known, as carried by a session token.
func ParseTypedRef(kind, raw string) (Ref, error) {
	ref, err := ParseRef(raw)
	if err != nil {
		return ref, err
	}

	if string(ref.kind) != kind {
		return Ref{}, fmt.Errorf("%w: %q is not a %s id", ErrInvalidRef, raw, kind)
	}

	return ref, nil
}

func (r Ref) Kind() RefKind {
	return r.kind
}

func (r Ref) IsZero() bool {
	return r.kind == ""
}

func (r Ref) UUID() (string, bool) {
	return r.uuid, r.kind == RefKindUUID
}

func (r Ref) Integer() (int64, bool) {
	return r.integer, r.kind == RefKindInteger
}

func (r Ref) String() string {
	switch r.kind {
	case RefKindUUID:
		return r.uuid
	case RefKindInteger:
		return strconv.FormatInt(r.integer, 10)
	default:
		return ""
	}
}

type refJSON struct {
	Kind  RefKind `json:"kind"`
	Value string  `json:"value"`
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(refJSON{Kind: r.kind, Value: r.String()})
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}

		return nil
	}

	var raw refJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode customer ref: %w", err)
	}

	ref, err := ParseTypedRef(string(raw.Kind), raw.Value)
	if err != nil {
		return err
	}

	*r = ref

	return nil
}
