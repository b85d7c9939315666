package arguments

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/usage"
)

type UUIDType struct{}

func UUID() UUIDType { return UUIDType{} }

func (UUIDType) Parse(r *reader.Reader) (any, error) {
	start := r.Cursor()
	token := r.ReadUnquotedString()
	id, err := uuid.Parse(token)
	if err != nil || len(token) != 36 {
		r.SetCursor(start)
		return nil, usage.ArgumentInvalidUUID.CreateWithContext(r, token)
	}
	return id, nil
}

func (UUIDType) Examples() []string {
	return []string{"dd12be42-52a9-4a91-a8a1-11c01849e498"}
}

func (UUIDType) String() string { return "uuid()" }

func GetUUID(ctx *dispatchers.Context, name string) (uuid.UUID, error) {
	return dispatchers.ArgumentAs[uuid.UUID](ctx, name)
}
