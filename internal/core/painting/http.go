package painting

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gallery/internal/platform/apperr"
	requestutil "github.com/taibuivan/gallery/internal/platform/request"
	"github.com/taibuivan/gallery/internal/platform/respond"
	"github.com/taibuivan/gallery/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the painting endpoints at the router root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/paintings", handler.listPaintings)
	router.Get("/paintings/{id}", handler.getPainting)
	router.Patch("/paintings/{id}/upvote", handler.upvotePainting)
	router.Post("/new_painting", handler.createPainting)
}

func (handler *Handler) listPaintings(writer http.ResponseWriter, request *http.Request) {
	paintings, err := handler.service.ListPaintings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, paintings)
}

func (handler *Handler) getPainting(writer http.ResponseWriter, request *http.Request) {
	paintingID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	painting, err := handler.service.GetPainting(request.Context(), paintingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, painting)
}

func (handler *Handler) upvotePainting(writer http.ResponseWriter, request *http.Request) {
	paintingID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	painting, err := handler.service.Upvote(request.Context(), paintingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, painting)
}

func (handler *Handler) createPainting(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeCreateInput(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	painting, err := handler.service.CreatePainting(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, painting)
}

// # Create Payload Decoding

// createPayload is the JSON allow-list. Unknown keys are ignored by the decoder.
// Dimensions are raw so both 8.5 and "8.5" are accepted.
type createPayload struct {
	Image      string          `json:"image"`
	Title      string          `json:"title"`
	ArtistName *string         `json:"artist_name"`
	Date       *string         `json:"date"`
	Width      json.RawMessage `json:"width"`
	Height     json.RawMessage `json:"height"`
}

// decodeCreateInput reads the allow-listed fields from a JSON, URL-encoded or multipart body.
func decodeCreateInput(request *http.Request) (CreateInput, error) {
	switch mediaType := requestutil.MediaType(request); mediaType {
	case requestutil.MediaJSON:
		return decodeCreateJSON(request)
	case "", requestutil.MediaForm, requestutil.MediaMultipart:
		return decodeCreateForm(request)
	default:
		return CreateInput{}, apperr.UnsupportedMediaType(mediaType)
	}
}

func decodeCreateJSON(request *http.Request) (CreateInput, error) {
	var payload createPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		return CreateInput{}, err
	}

	width, err := rawFloat(FieldWidth, payload.Width)
	if err != nil {
		return CreateInput{}, err
	}
	height, err := rawFloat(FieldHeight, payload.Height)
	if err != nil {
		return CreateInput{}, err
	}

	return CreateInput{
		Image:      payload.Image,
		Title:      payload.Title,
		ArtistName: payload.ArtistName,
		Date:       payload.Date,
		Width:      width,
		Height:     height,
	}, nil
}

func decodeCreateForm(request *http.Request) (CreateInput, error) {
	values, err := requestutil.Form(request)
	if err != nil {
		return CreateInput{}, err
	}

	width, err := requestutil.OptionalFloat(FieldWidth, values.Get(FieldWidth))
	if err != nil {
		return CreateInput{}, err
	}
	height, err := requestutil.OptionalFloat(FieldHeight, values.Get(FieldHeight))
	if err != nil {
		return CreateInput{}, err
	}

	input := CreateInput{
		Image:  values.Get(FieldImage),
		Title:  values.Get(FieldTitle),
		Width:  width,
		Height: height,
	}
	if values.Has(FieldDate) {
		date := values.Get(FieldDate)
		input.Date = &date
	}
	if values.Has(FieldArtistName) {
		name := values.Get(FieldArtistName)
		input.ArtistName = &name
	}
	return input, nil
}

// rawFloat accepts a JSON number, a numeric string, an empty string or null.
func rawFloat(field string, raw json.RawMessage) (*float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, validate.ErrInvalidJSON
		}
		return requestutil.OptionalFloat(field, text)
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, apperr.BadRequest(field + " must be a number")
	}
	return &value, nil
}
