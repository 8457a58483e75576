package log_test

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"testing"

	applog "quickbasket/internal/log"
)

func capture(t *testing.T, fn func()) []byte {
	t.Helper()
	var buf bytes.Buffer
	prev := stdlog.Writer()
	flags := stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	defer func() {
		stdlog.SetOutput(prev)
		stdlog.SetFlags(flags)
	}()
	fn()
	return bytes.TrimSpace(buf.Bytes())
}

func TestBasketFieldsArePromoted(t *testing.T) {
	line := capture(t, func() {
		applog.Info(nil, "basket.recalculated", map[string]any{
			"basket_id": "b-1",
			"sku":       "A",
			"total":     130,
		})
	})

	var e struct {
		Level    string         `json:"level"`
		Action   string         `json:"action"`
		BasketID string         `json:"basket_id"`
		SKU      string         `json:"sku"`
		Fields   map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(line, &e); err != nil {
		t.Fatalf("not a JSON line: %q (%v)", line, err)
	}
	if e.Level != "info" || e.Action != "basket.recalculated" {
		t.Fatalf("bad envelope: %+v", e)
	}
	if e.BasketID != "b-1" || e.SKU != "A" {
		t.Fatalf("identifiers not promoted: %+v", e)
	}
	if _, dup := e.Fields["basket_id"]; dup {
		t.Fatal("basket_id duplicated in fields")
	}
	if e.Fields["total"] != float64(130) {
		t.Fatalf("remaining fields lost: %+v", e.Fields)
	}
}

func TestErrorEntryCarriesErr(t *testing.T) {
	line := capture(t, func() {
		applog.Error(nil, "basket.checkout", errors.New("kv unavailable"), nil)
	})

	var e struct {
		Level string `json:"level"`
		Err   string `json:"err"`
	}
	if err := json.Unmarshal(line, &e); err != nil {
		t.Fatalf("not a JSON line: %q (%v)", line, err)
	}
	if e.Level != "error" || e.Err != "kv unavailable" {
		t.Fatalf("bad error entry: %+v", e)
	}
}
