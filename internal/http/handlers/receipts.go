package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"upireceipts.in/app/internal/modules/receipts"
	"upireceipts.in/app/internal/storage"
)

type ReceiptHandler struct {
	Logger *slog.Logger
	Store  storage.Store
}

func NewReceiptHandler(logger *slog.Logger, store storage.Store) *ReceiptHandler {
	return &ReceiptHandler{Logger: logger, Store: store}
}

// Single-range form only. Suffix ranges (bytes=-500) and multi-range requests
// are rejected rather than partially honored.
var byteRangePattern = regexp.MustCompile(`^bytes=(\d+)-(\d*)$`)

// GET /receipts/:name
func (h *ReceiptHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if !receipts.ValidFileName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid receipt name."})
		return
	}

	data, err := h.Store.Load(c.Request.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Receipt not found."})
		return
	}
	if err != nil {
		h.Logger.Error("receipt load failed", "name", name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not read the receipt."})
		return
	}

	total := int64(len(data))

	rangeHeader := c.GetHeader("Range")
	if rangeHeader == "" {
		setPDFHeaders(c, name, total)
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}

	start, end, err := parseByteRange(rangeHeader, total)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	chunk := data[start : end+1]
	setPDFHeaders(c, name, int64(len(chunk)))
	c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, total))
	c.Data(http.StatusPartialContent, "application/pdf", chunk)
}

func setPDFHeaders(c *gin.Context, name string, length int64) {
	c.Header("Accept-Ranges", "bytes")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Header("Content-Length", strconv.FormatInt(length, 10))
}

func parseByteRange(header string, size int64) (start, end int64, err error) {
	if strings.Contains(header, ",") {
		return 0, 0, errors.New("multiple ranges are not supported")
	}

	m := byteRangePattern.FindStringSubmatch(header)
	if m == nil {
		return 0, 0, errors.New("malformed range header")
	}

	start, err = strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, errors.New("malformed range header")
	}

	end = size - 1
	if m[2] != "" {
		end, err = strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, 0, errors.New("malformed range header")
		}
	}
	if end > size-1 {
		end = size - 1
	}

	if start >= size || start > end {
		return 0, 0, errors.New("range out of bounds")
	}
	return start, end, nil
}
