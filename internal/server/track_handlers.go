package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/soundvault/soundvault/internal/usecase"
)

type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Genre     string `json:"genre"`
	Date      string `json:"date"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func convertTrack(t usecase.Track) Track {
	return Track{
		ID:        t.ID.String(),
		Title:     t.Title,
		Artist:    t.Artist,
		Genre:     t.Genre,
		Date:      t.Date,
		FileURL:   t.FileURL,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

// formFile adapts a multipart file header to usecase.File.
type formFile struct {
	fh *multipart.FileHeader
}

func (f formFile) Name() string                 { return f.fh.Filename }
func (f formFile) ContentType() string          { return f.fh.Header.Get("Content-Type") }
func (f formFile) Size() int64                  { return f.fh.Size }
func (f formFile) Open() (io.ReadCloser, error) { return f.fh.Open() }

// bindFile returns the uploaded "file" form part, or nil when the part
// is absent.
func bindFile(ctx echo.Context) (usecase.File, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return formFile{fh: fh}, nil
}

type CreateTrackRequest struct {
	Title  string `form:"title"`
	Artist string `form:"artist"`
	Genre  string `form:"genre"`
	Date   string `form:"date"`
}

func (s *Server) CreateTrack(ctx echo.Context) error {
	var req CreateTrackRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	file, err := bindFile(ctx)
	if err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	t, err := s.server.CreateTrack(ctx.Request().Context(), usecase.Track{
		Title:  req.Title,
		Artist: req.Artist,
		Genre:  req.Genre,
		Date:   req.Date,
	}, file)
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Data: convertTrack(t)})
}

func (s *Server) ListTracks(ctx echo.Context) error {
	list, err := s.server.ListTracks(ctx.Request().Context())
	if err != nil {
		return errJSON(ctx, err)
	}

	if len(list) == 0 {
		return ctx.NoContent(204)
	}

	tracks := make([]Track, 0, len(list))
	for _, t := range list {
		tracks = append(tracks, convertTrack(t))
	}
	return ctx.JSON(200, Res{Data: tracks})
}

type GetTrackByIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) GetTrackByID(ctx echo.Context) error {
	var req GetTrackByIDRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	t, err := s.server.GetTrackByID(ctx.Request().Context(), id)
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Data: convertTrack(t)})
}

type UpdateTrackRequest struct {
	ID string `param:"id" validate:"required,uuid"`

	Title  string `form:"title"`
	Artist string `form:"artist"`
	Genre  string `form:"genre"`
	Date   string `form:"date"`
}

func (s *Server) UpdateTrack(ctx echo.Context) error {
	var req UpdateTrackRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	file, err := bindFile(ctx)
	if err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	t, err := s.server.UpdateTrack(ctx.Request().Context(), usecase.Track{
		ID:     id,
		Title:  req.Title,
		Artist: req.Artist,
		Genre:  req.Genre,
		Date:   req.Date,
	}, file)
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Data: convertTrack(t)})
}

type DeleteTrackRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) DeleteTrack(ctx echo.Context) error {
	var req DeleteTrackRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	id, _ := uuid.Parse(req.ID)
	if err := s.server.DeleteTrack(ctx.Request().Context(), id); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "track " + req.ID + " deleted"})
}

func (s *Server) UploadFile(ctx echo.Context) error {
	file, err := bindFile(ctx)
	if err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	key, err := s.server.UploadFile(ctx.Request().Context(), file)
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, map[string]string{"key": key})
}

func (s *Server) ReconcileStorage(ctx echo.Context) error {
	if err := s.server.RequestReconcile(ctx.Request().Context()); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(202, Res{Message: "reconciliation scheduled"})
}
