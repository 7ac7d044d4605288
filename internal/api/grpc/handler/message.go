package handler

import (
	"context"

	"github.com/dtroode/emr-server/internal/model"
)

func (h *EMR) ListMessages(ctx context.Context, _ Empty) (List[model.Message], error) {
	return newList(h.services.Messages.List(ctx)), nil
}

func (h *EMR) SendMessage(ctx context.Context, req model.SendMessageParams) (model.Message, error) {
	m, err := h.services.Messages.Send(ctx, req)
	if err != nil {
		h.logger.Info("Message handler: send failed",
			"user_id", h.userID(ctx),
			"recipient_id", req.RecipientID,
			"error", err.Error())
		return model.Message{}, handleError(err)
	}
	return m, nil
}

func (h *EMR) MarkMessageRead(ctx context.Context, req IDRequest) (model.Message, error) {
	m, err := h.services.Messages.MarkRead(ctx, req.ID)
	if err != nil {
		return model.Message{}, handleError(err)
	}
	return m, nil
}

func (h *EMR) UpdateMessage(ctx context.Context, req UpdateRequest[model.MessagePatch]) (model.Message, error) {
	m, err := h.services.Messages.Update(ctx, req.ID, req.Patch)
	if err != nil {
		return model.Message{}, handleError(err)
	}
	return m, nil
}

func (h *EMR) DeleteMessage(ctx context.Context, req IDRequest) (Empty, error) {
	if err := h.services.Messages.Delete(ctx, req.ID); err != nil {
		return Empty{}, handleError(err)
	}
	return Empty{}, nil
}
