package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/molinab297/gosteg/pkg/imaging"
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// maxUploadBytes caps the request body; uploads past 32 MiB fail with 413
// before any image decoding.
const maxUploadBytes = 32 << 20

// Server holds the API server state
type Server struct {
	codec   *stego.Codec
	journal *journal.Journal // nil when journaling is disabled
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(codec *stego.Codec, jnl *journal.Journal, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		codec:   codec,
		journal: jnl,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode godoc
//
//	@Summary		Embed text in an image
//	@Description	Embed the given text in the uploaded image and return the result as PNG
//	@Tags			codec
//	@Accept			multipart/form-data
//	@Produce		png
//	@Param			image	formData	file	true	"Carrier image (PNG, BMP, GIF, or JPEG)"
//	@Param			text	formData	string	true	"Text to embed"
//	@Success		200		{string}	byte
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Router			/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	buf, err := s.readImageUpload(w, r)
	if err != nil {
		s.recordCodec("encode", false, start)
		sendError(w, err.Error(), uploadStatus(err))
		return
	}
	text := r.FormValue("text")

	encoded, err := s.codec.Encode(buf, text)
	if err != nil {
		s.recordCodec("encode", false, start)
		sendError(w, fmt.Sprintf("Failed to encode payload: %v", err), statusForError(err))
		return
	}

	s.recordCodec("encode", true, start)
	if s.metrics != nil {
		s.metrics.RecordPayloadSize(len(text) * 8)
	}
	s.recordJournal("encode", len(text)*8)

	w.Header().Set("Content-Type", "image/png")
	if err := imaging.EncodePNG(w, encoded); err != nil {
		sendError(w, "Failed to write PNG response", http.StatusInternalServerError)
	}
}

// handleDecode godoc
//
//	@Summary		Recover text from an image
//	@Description	Extract the text embedded in the uploaded image
//	@Tags			codec
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image produced by the encoder"
//	@Success		200		{object}	DecodeResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	buf, err := s.readImageUpload(w, r)
	if err != nil {
		s.recordCodec("decode", false, start)
		sendError(w, err.Error(), uploadStatus(err))
		return
	}

	text, err := s.codec.Decode(buf)
	if err != nil {
		s.recordCodec("decode", false, start)
		sendError(w, fmt.Sprintf("Failed to decode payload: %v", err), statusForError(err))
		return
	}

	s.recordCodec("decode", true, start)
	s.recordJournal("decode", len(text)*8)

	sendSuccess(w, DecodeResponse{Text: text, Bits: len(text) * 8})
}

// handleCapacity godoc
//
//	@Summary		Report image capacity
//	@Description	Report how many payload bits the uploaded image can carry
//	@Tags			codec
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200	{object}	CapacityResponse
//	@Failure		400	{object}	APIResponse
//	@Router			/capacity [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	buf, err := s.readImageUpload(w, r)
	if err != nil {
		s.recordCodec("capacity", false, start)
		sendError(w, err.Error(), uploadStatus(err))
		return
	}

	bits := s.codec.Capacity(buf.Width, buf.Height)
	s.recordCodec("capacity", true, start)

	sendSuccess(w, CapacityResponse{
		Width:         buf.Width,
		Height:        buf.Height,
		CapacityBits:  bits,
		CapacityBytes: bits / 8,
	})
}

// handleJournal godoc
//
//	@Summary		List recorded operations
//	@Description	List recent encode/decode operations, newest first
//	@Tags			journal
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries to return"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	APIResponse
//	@Router			/journal [get]
//	@Security		ApiKeyAuth
func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		sendError(w, "Journal is not enabled on this server", http.StatusNotFound)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			sendError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.journal.List(limit)
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list journal: %v", err), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, map[string]interface{}{"entries": entries})
}

// readImageUpload parses the multipart form and decodes the "image" part
// into a pixel buffer. The body is capped at maxUploadBytes.
func (s *Server) readImageUpload(w http.ResponseWriter, r *http.Request) (*stego.Buffer, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, fmt.Errorf("missing image upload: %w", err)
	}
	defer file.Close()

	buf, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unreadable image: %w", err)
	}
	return buf, nil
}

func (s *Server) recordCodec(op string, success bool, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordCodecOperation(op, success, time.Since(start))
	}
}

func (s *Server) recordJournal(op string, bits int) {
	if s.journal == nil {
		return
	}
	// Journal failures do not fail the request.
	_, _ = s.journal.Record(op, "upload", bits)
}

// uploadStatus distinguishes an oversized body from a malformed upload.
func uploadStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// statusForError maps codec errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, stego.ErrCapacity):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, stego.ErrCorruptHeader), errors.Is(err, stego.ErrMalformedPayload):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
