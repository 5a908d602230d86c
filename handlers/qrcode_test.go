package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestGetQRCode(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/qrcode", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		QRCode string `json:"qrCode"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(body.QRCode, prefix) {
		t.Fatalf("qrCode does not start with %q", prefix)
	}
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(body.QRCode, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("payload is not a PNG image")
	}

	// Same configured URL, same image.
	w2 := doJSON(r, http.MethodGet, "/api/qrcode", "", nil)
	if w.Body.String() != w2.Body.String() {
		t.Error("QR code is not deterministic for a fixed URL")
	}
}
