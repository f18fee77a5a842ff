package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinab297/gosteg/pkg/imaging"
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// Prometheus collectors register globally, so every test shares one Metrics.
var testMetrics = NewMetrics()

func newTestServer(jnl *journal.Journal) *Server {
	codec := stego.NewCodec(stego.DefaultConfig())
	return NewServer(codec, jnl, ServerConfig{APIKey: "test-key"}, testMetrics)
}

func testBuffer(width, height int) *stego.Buffer {
	buf := stego.NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, stego.Pixel{
				R: uint8(x*13 + 7),
				G: uint8(y*17 + 3),
				B: uint8(x*y + 1),
			})
		}
	}
	return buf
}

// imageRequest builds a multipart request carrying imageData as the "image"
// part plus any extra form fields.
func imageRequest(t *testing.T, target string, imageData []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	fw, err := mw.CreateFormFile("image", "carrier.png")
	require.NoError(t, err)
	_, err = fw.Write(imageData)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T, buf *stego.Buffer) []byte {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, imaging.EncodePNG(&out, buf))
	return out.Bytes()
}

func TestServer_handleHealth(t *testing.T) {
	server := newTestServer(nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data)
}

func TestServer_EncodeDecodeRoundTrip(t *testing.T) {
	server := newTestServer(nil)
	text := "meet me at the usual place"

	// Encode.
	req := imageRequest(t, "/encode", pngBytes(t, testBuffer(40, 40)), map[string]string{"text": text})
	w := httptest.NewRecorder()
	server.handleEncode(w, req)

	require.Equal(t, http.StatusOK, w.Code, "encode body: %s", w.Body.String())
	assert.Equal(t, "image/png", w.Result().Header.Get("Content-Type"))

	// Decode the returned PNG.
	req = imageRequest(t, "/decode", w.Body.Bytes(), nil)
	w = httptest.NewRecorder()
	server.handleDecode(w, req)

	require.Equal(t, http.StatusOK, w.Code, "decode body: %s", w.Body.String())

	var response struct {
		Success bool           `json:"success"`
		Data    DecodeResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, text, response.Data.Text)
	assert.Equal(t, len(text)*8, response.Data.Bits)
}

func TestServer_handleEncode_MissingImage(t *testing.T) {
	server := newTestServer(nil)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("text", "no image here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/encode", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	server.handleEncode(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_handleEncode_PayloadTooLarge(t *testing.T) {
	server := newTestServer(nil)

	// A 4x4 carrier has no payload room at all.
	big := bytes.Repeat([]byte("x"), 100)
	req := imageRequest(t, "/encode", pngBytes(t, testBuffer(4, 4)), map[string]string{"text": string(big)})
	w := httptest.NewRecorder()

	server.handleEncode(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestServer_handleEncode_UploadTooLarge(t *testing.T) {
	server := newTestServer(nil)

	// A body past the 32 MiB cap is refused before any image decoding.
	junk := bytes.Repeat([]byte{0xAB}, maxUploadBytes+1)
	req := imageRequest(t, "/encode", junk, map[string]string{"text": "hi"})
	w := httptest.NewRecorder()

	server.handleEncode(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestServer_handleDecode_CorruptHeader(t *testing.T) {
	server := newTestServer(nil)

	// All-white pixels decode to a header count of 2047, impossible for 10x10.
	white := stego.NewBuffer(10, 10)
	for i := range white.Pix {
		white.Pix[i] = stego.Pixel{R: 255, G: 255, B: 255}
	}

	req := imageRequest(t, "/decode", pngBytes(t, white), nil)
	w := httptest.NewRecorder()

	server.handleDecode(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestServer_handleCapacity(t *testing.T) {
	server := newTestServer(nil)

	req := imageRequest(t, "/capacity", pngBytes(t, testBuffer(10, 10)), nil)
	w := httptest.NewRecorder()

	server.handleCapacity(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool             `json:"success"`
		Data    CapacityResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 10, response.Data.Width)
	assert.Equal(t, 10, response.Data.Height)
	assert.Equal(t, 267, response.Data.CapacityBits)
	assert.Equal(t, 33, response.Data.CapacityBytes)
}

func TestServer_handleJournal(t *testing.T) {
	t.Run("disabled journal returns 404", func(t *testing.T) {
		server := newTestServer(nil)

		req := httptest.NewRequest("GET", "/journal", nil)
		w := httptest.NewRecorder()
		server.handleJournal(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("records encode operations", func(t *testing.T) {
		jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal"))
		require.NoError(t, err)
		defer jnl.Close()

		server := newTestServer(jnl)

		req := imageRequest(t, "/encode", pngBytes(t, testBuffer(20, 20)), map[string]string{"text": "hi"})
		w := httptest.NewRecorder()
		server.handleEncode(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest("GET", "/journal?limit=10", nil)
		w = httptest.NewRecorder()
		server.handleJournal(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Entries []journal.Entry `json:"entries"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Data.Entries, 1)
		assert.Equal(t, "encode", response.Data.Entries[0].Op)
		assert.Equal(t, 16, response.Data.Entries[0].Bits)
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal"))
		require.NoError(t, err)
		defer jnl.Close()

		server := newTestServer(jnl)
		req := httptest.NewRequest("GET", "/journal?limit=-1", nil)
		w := httptest.NewRecorder()
		server.handleJournal(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
