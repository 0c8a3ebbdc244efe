package controller

import (
	"errors"

	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/pkg/apperror"
	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	msgQuestionAdded      = "Question added successfully"
	msgFetchFailed        = "Failed to fetch notes"
	msgAddFailed          = "Failed to add question"
	msgFieldsRequired     = "All fields are required"
	msgDuplicateQuestion  = "Question ID already exists in this sub-topic"
	msgInvalidRequestBody = "Invalid request body"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	AddQuestion(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	logger      logger.ILogger
}

func NewNoteController(noteService service.INoteService, log logger.ILogger) INoteController {
	return &noteController{
		noteService: noteService,
		logger:      log,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.AddQuestion)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.ListNotes(ctx.UserContext())
	if err != nil {
		c.logger.Error("NoteController", "List notes failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, msgFetchFailed)
	}

	return ctx.JSON(res)
}

func (c *noteController) AddQuestion(ctx *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidRequestBody)
	}

	res, err := c.noteService.AddQuestion(ctx.UserContext(), &req)
	if err != nil {
		return c.mapAddError(err)
	}

	return ctx.JSON(dto.AddQuestionResponse{
		Message: msgQuestionAdded,
		Note:    res,
	})
}

func (c *noteController) mapAddError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, msgFieldsRequired)
	case errors.Is(err, apperror.ErrDuplicateQuestionId):
		return fiber.NewError(fiber.StatusBadRequest, msgDuplicateQuestion)
	default:
		c.logger.Error("NoteController", "Add question failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, msgAddFailed)
	}
}
