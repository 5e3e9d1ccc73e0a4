package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/just-one-coder/flux-prism/internal/services/gallery"
	"github.com/just-one-coder/flux-prism/internal/services/registrar"
	"github.com/just-one-coder/flux-prism/internal/services/registry"
	"github.com/just-one-coder/flux-prism/internal/services/verifier"
)

type RestController struct {
	log       *zap.SugaredLogger
	registrar registrar.Registrar
	verifier  verifier.Verifier
	gallery   gallery.Gallery
	ledger    registry.SigningRegistry
}

// NewRestController wires the orchestrators behind HTTP. The signing
// ledger may be nil when no key is configured; registration then
// answers with a precondition failure instead of crashing.
func NewRestController(
	log *zap.SugaredLogger,
	reg registrar.Registrar,
	ver verifier.Verifier,
	gal gallery.Gallery,
	ledger registry.SigningRegistry,
) *RestController {
	return &RestController{
		log:       log,
		registrar: reg,
		verifier:  ver,
		gallery:   gal,
		ledger:    ledger,
	}
}

type RegisterResponse struct {
	ContentHash string `json:"content_hash"`
	StorageRef  string `json:"storage_ref"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

type VerifyResponse struct {
	Outcome      string `json:"outcome"`
	ContentHash  string `json:"content_hash"`
	Owner        string `json:"owner,omitempty"`
	RegisteredAt string `json:"registered_at,omitempty"`
	Title        string `json:"title,omitempty"`
}

type GalleryResponse struct {
	Items    []GalleryItem `json:"items"`
	Partial  bool          `json:"partial"`
	Fallback bool          `json:"fallback"`
}

type GalleryItem struct {
	ContentHash  string `json:"content_hash"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Owner        string `json:"owner"`
	RegisteredAt string `json:"registered_at"`
	ImageURL     string `json:"image_url"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func (c *RestController) RegisterArtwork(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "failed to read file"})
		return
	}

	draft := registrar.Draft{
		File:        bytes.NewReader(content),
		FileName:    header.Filename,
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}

	receipt, err := c.registrar.Register(ctx.Request.Context(), c.ledger, &draft)
	if err != nil {
		c.writeRegisterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &RegisterResponse{
		ContentHash: receipt.ContentHash,
		StorageRef:  receipt.StorageRef,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
	})
}

func (c *RestController) writeRegisterError(ctx *gin.Context, err error) {
	var commitErr *registrar.CommitError

	switch {
	case errors.Is(err, registrar.ErrPrecondition):
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, registrar.ErrDuplicate):
		ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, registrar.ErrUpload):
		c.log.With("err", err).Error("upload failed")
		ctx.JSON(http.StatusBadGateway, errorResponse{Error: "upload failed"})
	case errors.As(err, &commitErr):
		c.log.With("err", err).Error("commit rejected")
		ctx.JSON(http.StatusBadGateway, errorResponse{
			Error:  "commit rejected",
			Reason: string(commitErr.Reason),
		})
	default:
		c.log.With("err", err).Error("registration failed")
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "registration failed"})
	}
}

func (c *RestController) VerifyArtwork(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	result, err := c.verifier.Verify(ctx.Request.Context(), file)
	if err != nil {
		c.log.With("err", err).Error("verification failed")
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: "failed to read file"})
		return
	}

	resp := VerifyResponse{
		Outcome:     result.Outcome.String(),
		ContentHash: result.ContentHash,
	}
	if result.Outcome == verifier.OutcomeVerified {
		resp.Owner = result.Owner.Hex()
		resp.RegisteredAt = result.RegisteredAt.Format(time.RFC3339)
		resp.Title = result.Title
	}

	ctx.JSON(http.StatusOK, &resp)
}

func (c *RestController) ListGallery(ctx *gin.Context) {
	listing, err := c.gallery.Fetch(ctx.Request.Context())
	if err != nil {
		c.log.With("err", err).Error("gallery fetch failed")
		ctx.Status(http.StatusInternalServerError)
		return
	}

	items := listing.Items
	items = gallery.Filter(items, ctx.Query("q"))
	items = gallery.SortByTime(items, ctx.Query("sort") == "oldest")

	resp := GalleryResponse{
		Items:    make([]GalleryItem, 0, len(items)),
		Partial:  listing.Partial,
		Fallback: listing.Fallback,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, GalleryItem{
			ContentHash:  item.ContentHash,
			Title:        item.Title,
			Description:  item.Description,
			Owner:        item.Owner.Hex(),
			RegisteredAt: item.RegisteredAt.Format(time.RFC3339),
			ImageURL:     item.ImageURL,
		})
	}

	ctx.JSON(http.StatusOK, &resp)
}
