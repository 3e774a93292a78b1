package v1

import (
	"errors"

	"github.com/Behyna/ujumbesms/internal/api/validator"
	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/internal/publishers"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	validator validator.IXValidator
	publisher publishers.SendPublisher
	messaging service.MessagingService
	account   service.AccountService
	history   service.HistoryService
}

func NewHandler(logger *zap.Logger, v validator.IXValidator, publisher publishers.SendPublisher,
	messaging service.MessagingService, account service.AccountService, history service.HistoryService,
) *Handler {
	return &Handler{
		logger:    logger,
		validator: v,
		publisher: publisher,
		messaging: messaging,
		account:   account,
		history:   history,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// QueueMessages accepts a batch for asynchronous delivery by the send worker.
func (h *Handler) QueueMessages(c *fiber.Ctx) error {
	request, err := h.parseSendRequest(c)
	if err != nil {
		return err
	}

	cmd := request.ToCommand()
	if err := h.publisher.Publish(c.UserContext(), cmd); err != nil {
		return service.NewServiceError(constants.ErrCodeQueue, err)
	}

	h.logger.Info("Messages queued", zap.Int("bags", len(cmd.Messages)))

	return c.Status(fiber.StatusAccepted).JSON(QueueMessagesResponse{Status: StatusQueued, Bags: len(cmd.Messages)})
}

// SendMessages forwards a batch to the gateway and relays its response.
func (h *Handler) SendMessages(c *fiber.Ctx) error {
	request, err := h.parseSendRequest(c)
	if err != nil {
		return err
	}

	response, err := h.messaging.Send(c.UserContext(), request.ToCommand())
	if err != nil {
		h.logger.Error("Failed to send messages", zap.Error(err), zap.Int("bags", len(request.Messages)))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *Handler) Balance(c *fiber.Ctx) error {
	response, err := h.account.Balance(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (h *Handler) History(c *fiber.Ctx) error {
	query := service.HistoryQuery{
		Status: c.Query("status"),
		Number: c.Query("number"),
	}

	messages, err := h.history.Fetch(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(HistoryResponse{Messages: messages, Total: len(messages)})
}

// Archive lists stored history records for one number.
func (h *Handler) Archive(c *fiber.Ctx) error {
	query := service.ArchiveQuery{
		Number: c.Query("number"),
		Limit:  c.QueryInt("limit", service.DefaultArchiveLimit),
		Offset: c.QueryInt("offset", 0),
	}

	messages, err := h.history.Archived(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(NewArchiveResponse(messages))
}

func (h *Handler) ArchiveStats(c *fiber.Ctx) error {
	stats, err := h.history.Stats(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *Handler) parseSendRequest(c *fiber.Ctx) (SendMessagesRequest, error) {
	var request SendMessagesRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return request, service.NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		msg := h.validator.Message(errs)
		h.logger.Warn("Invalid send request", zap.String("errors", msg))
		return request, service.NewServiceError(constants.ErrCodeValidationFailed, errors.New(msg))
	}

	return request, nil
}
