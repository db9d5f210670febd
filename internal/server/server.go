package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-report/internal/loader"
	"github.com/iwvelando/finance-report/internal/report"
	"github.com/iwvelando/finance-report/internal/summary"
	"github.com/iwvelando/finance-report/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	pipeline      Pipeline
}

// NewHandler constructs the HTTP handler that serves the web UI and report API
// using the default loader pipeline.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	return NewHandlerWithPipeline(logger, maxUploadSize, version, nil)
}

// NewHandlerWithPipeline is NewHandler with an explicit Pipeline. A nil
// pipeline uses the default loader pipeline.
func NewHandlerWithPipeline(logger *zap.Logger, maxUploadSize int64, version string, pipeline Pipeline) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if pipeline == nil {
		pipeline = NewPipeline(loader.New(logger, loader.Options{}))
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion, pipeline: pipeline}

	mux := http.NewServeMux()

	// Rendered report for an uploaded transaction file
	mux.HandleFunc("/api/report", h.handleReport)

	// JSON summary plus timing for the web UI
	mux.HandleFunc("/api/summary", h.handleSummary)

	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type summaryResponse struct {
	Report   json.RawMessage `json:"report"`
	Source   string          `json:"source"`
	Format   string          `json:"format"`
	Duration string          `json:"duration"`
}

// upload is a transaction file received from a client.
type upload struct {
	name   string
	format loader.Format
	data   []byte
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	formatName := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if formatName == "" {
		formatName = constants.OutputFormatMarkdown
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	opts := report.Options{Pretty: parseBool(r.URL.Query().Get("pretty"))}

	up, status, err := h.readUpload(w, r)
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	s, err := h.pipeline.Summarize(r.Context(), bytes.NewReader(up.data), up.name, up.format)
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
		return
	}

	body, err := report.Render(s, format, opts)
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
		return
	}

	h.logger.Info("report rendered",
		zap.String("op", op),
		zap.String("source", up.name),
		zap.String("format", string(format)),
		zap.Int("transactions", s.TransactionCount),
	)

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		h.logger.Error("failed to write report response",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSummary"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	up, status, err := h.readUpload(w, r)
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	s, err := h.pipeline.Summarize(r.Context(), bytes.NewReader(up.data), up.name, up.format)
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
		return
	}

	h.respondSummary(w, s, up, start, op)
}

func (h *handler) respondSummary(w http.ResponseWriter, s summary.Summary, up upload, start time.Time, op string) {
	body, err := report.JSON(s, false)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("summary computed",
		zap.String("op", op),
		zap.String("source", up.name),
		zap.Int("transactions", s.TransactionCount),
		zap.Int("categories", len(s.CategoryBreakdown)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, summaryResponse{
		Report:   json.RawMessage(body),
		Source:   up.name,
		Format:   string(up.format),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// readUpload reads the multipart "file" field and resolves its input format
// from the optional "inputFormat" field or the file name. On failure it
// returns the HTTP status to respond with.
func (h *handler) readUpload(w http.ResponseWriter, r *http.Request) (upload, int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return upload{}, http.StatusRequestEntityTooLarge,
				fmt.Errorf("upload exceeds limit of %d bytes", h.maxUploadSize)
		}
		return upload{}, http.StatusBadRequest, fmt.Errorf("failed to parse upload: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return upload{}, http.StatusBadRequest, errors.New("missing transaction file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.readUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	hint := loader.Format(strings.ToLower(strings.TrimSpace(r.FormValue("inputFormat"))))
	format, err := loader.ResolveFormat(header.Filename, hint)
	if err != nil {
		return upload{}, http.StatusBadRequest, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return upload{}, http.StatusInternalServerError, fmt.Errorf("failed to read transactions: %v", err)
	}

	return upload{name: header.Filename, format: format, data: buf.Bytes()}, http.StatusOK, nil
}

// statusFor maps pipeline and renderer errors onto HTTP statuses.
func statusFor(err error) int {
	var (
		parseErr       *loader.ParseError
		unsupportedErr *loader.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &unsupportedErr), errors.Is(err, report.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("report request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func parseBool(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	parsed, err := strconv.ParseBool(trimmed)
	return err == nil && parsed
}
