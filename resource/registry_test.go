package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rhoconnect-go/models"
)

type fullResource struct {
	partitions []string
}

func (f *fullResource) Query(_ context.Context, partition string) ([]any, error) {
	f.partitions = append(f.partitions, partition)
	return []any{models.Attributes{"id": "1", "name": "iPhone"}}, nil
}

func (f *fullResource) ReceiveCreate(_ context.Context, _ string, _ models.Attributes) (string, error) {
	return "1", nil
}

func (f *fullResource) ReceiveUpdate(_ context.Context, _ string, attrs models.Attributes) (string, error) {
	return attrs["id"].(string), nil
}

func (f *fullResource) ReceiveDelete(_ context.Context, _ string, _ models.Attributes) (string, error) {
	return "", errors.New("boom")
}

type brokenResource struct{}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	res := &fullResource{}

	require.NoError(t, r.Register("Product", res))

	got, err := r.Lookup("Product")
	require.NoError(t, err)
	assert.Same(t, res, got)
}

func TestRegistry_Register_Errors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Product", &fullResource{}))

	tests := []struct {
		name    string
		resName string
		res     any
		wantErr error
	}{
		{name: "duplicate", resName: "Product", res: &fullResource{}, wantErr: ErrAlreadyRegistered},
		{name: "empty name", resName: "", res: &fullResource{}, wantErr: ErrEmptyName},
		{name: "nil resource", resName: "Other", res: nil, wantErr: ErrNilResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.resName, tt.res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_MustRegister_PanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Product", &fullResource{})

	assert.Panics(t, func() { r.MustRegister("Product", &fullResource{}) })
}

func TestRegistry_Lookup_Missing(t *testing.T) {
	_, err := NewRegistry().Lookup("Nope")

	require.ErrorIs(t, err, ErrMissingResource)
	assert.Equal(t, "missing resource Nope", err.Error())
}

func TestRegistry_Lookup_ExactName(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Product", &fullResource{})

	_, err := r.Lookup("product")
	assert.ErrorIs(t, err, ErrMissingResource)
}

func TestRegistry_Names_Sorted(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Zeta", &fullResource{})
	r.MustRegister("Alpha", &fullResource{})

	assert.Equal(t, []string{"Alpha", "Zeta"}, r.Names())
}

func TestRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()
	res := &fullResource{}
	r := NewRegistry()
	r.MustRegister("Product", res)

	objs, err := r.Query(ctx, "Product", "app")
	require.NoError(t, err)
	assert.Len(t, objs, 1)
	assert.Equal(t, []string{"app"}, res.partitions)

	id, err := r.ReceiveCreate(ctx, "Product", "app", models.Attributes{"name": "iPhone"})
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	id, err = r.ReceiveUpdate(ctx, "Product", "app", models.Attributes{"id": "123"})
	require.NoError(t, err)
	assert.Equal(t, "123", id)

	_, err = r.ReceiveDelete(ctx, "Product", "app", models.Attributes{"id": "123"})
	assert.EqualError(t, err, "boom")
}

func TestRegistry_Dispatch_MissingMethod(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	r.MustRegister("BrokenResource", brokenResource{})

	tests := []struct {
		name   string
		call   func() error
		method string
	}{
		{name: "query", method: "Query", call: func() error {
			_, err := r.Query(ctx, "BrokenResource", "app")
			return err
		}},
		{name: "create", method: "ReceiveCreate", call: func() error {
			_, err := r.ReceiveCreate(ctx, "BrokenResource", "app", nil)
			return err
		}},
		{name: "update", method: "ReceiveUpdate", call: func() error {
			_, err := r.ReceiveUpdate(ctx, "BrokenResource", "app", nil)
			return err
		}},
		{name: "delete", method: "ReceiveDelete", call: func() error {
			_, err := r.ReceiveDelete(ctx, "BrokenResource", "app", nil)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var mme *MissingMethodError
			require.ErrorAs(t, err, &mme)
			assert.ErrorIs(t, err, ErrMissingMethod)
			assert.Equal(t, tt.method, mme.Method)
			assert.Equal(t,
				"error on method `"+tt.method+"` for BrokenResource: undefined method `"+tt.method+"' for BrokenResource",
				err.Error())
		})
	}
}

func TestRegistry_Dispatch_MissingResource(t *testing.T) {
	_, err := NewRegistry().Query(context.Background(), "Missing", "app")
	assert.ErrorIs(t, err, ErrMissingResource)
}
