package resource

import (
	"context"
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm/schema"

	"github.com/MKhiriev/rhoconnect-go/models"
)

var (
	schemaCache sync.Map
	namer       schema.Namer = schema.NamingStrategy{}
)

// Normalize serializes obj into the attribute mapping sent to RhoConnect and
// returns its id alongside. Supported inputs are, in order of precedence:
// values implementing [Serializer] (id from [Record.RecordID] or the "id"
// attribute), attribute maps, and gorm models (id from the primary key).
//
// Values are normalized so the result marshals to JSON predictably: times
// become unix seconds as a decimal string when timeAsInt is set and RFC 3339
// otherwise, unset (zero) times become nil, byte slices become strings, pointers are dereferenced and
// driver.Valuer types are unwrapped. The returned id is empty when obj has
// none, including gorm models whose primary key is still the zero value.
func Normalize(obj any, timeAsInt bool) (string, models.Attributes, error) {
	if isNil(obj) {
		return "", nil, ErrUnsupportedObject
	}

	var (
		id    string
		attrs models.Attributes
		keyed bool
		ctx   = context.Background()
	)

	switch v := obj.(type) {
	case Serializer:
		attrs = v.SyncAttributes()
		if rec, ok := obj.(Record); ok {
			id = rec.RecordID()
		}
	case models.Attributes:
		attrs = v
	case map[string]any:
		attrs = v
	default:
		rv := reflect.Indirect(reflect.ValueOf(obj))
		if rv.Kind() != reflect.Struct {
			return "", nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
		}
		s, err := parseSchema(obj)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrUnsupportedObject, err)
		}
		if pk, zero := s.PrioritizedPrimaryField.ValueOf(ctx, rv); !zero {
			id = fmt.Sprint(normalizeValue(pk, timeAsInt))
		}
		keyed = true
		attrs = schemaAttributes(ctx, s, rv)
	}

	out := normalizeAttributes(attrs, timeAsInt)
	if id == "" && !keyed {
		id = idOf(out, "id")
	}

	return id, out, nil
}

func parseSchema(model any) (*schema.Schema, error) {
	s, err := schema.Parse(model, &schemaCache, namer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedModel, err)
	}
	if s.PrioritizedPrimaryField == nil {
		return nil, fmt.Errorf("%w: %s has no primary key", ErrUnsupportedModel, s.Name)
	}
	return s, nil
}

// schemaAttributes reads every column-backed field of rv, keyed by column
// name.
func schemaAttributes(ctx context.Context, s *schema.Schema, rv reflect.Value) models.Attributes {
	attrs := make(models.Attributes, len(s.Fields))
	for _, f := range s.Fields {
		if f.DBName == "" || !f.Readable {
			continue
		}
		v, _ := f.ValueOf(ctx, rv)
		attrs[f.DBName] = v
	}
	return attrs
}

func normalizeAttributes(attrs models.Attributes, timeAsInt bool) models.Attributes {
	out := make(models.Attributes, len(attrs))
	for k, v := range attrs {
		out[k] = normalizeValue(v, timeAsInt)
	}
	return out
}

func normalizeValue(v any, timeAsInt bool) any {
	if isNil(v) {
		return nil
	}

	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return formatTime(x, timeAsInt)
	case []byte:
		return string(x)
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return v
		}
		return normalizeValue(dv, timeAsInt)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return normalizeValue(rv.Elem().Interface(), timeAsInt)
	}

	return v
}

func formatTime(t time.Time, asInt bool) string {
	if asInt {
		return strconv.FormatInt(t.Unix(), 10)
	}
	return t.Format(time.RFC3339)
}

func idOf(attrs models.Attributes, key string) string {
	raw, ok := attrs[key]
	if !ok || raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
