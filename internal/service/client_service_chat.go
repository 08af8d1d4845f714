package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

// alignmentSource provides the daily panchang appended to every chat
// request.
type alignmentSource interface {
	Alignment(ctx context.Context) (*models.AlignmentResponse, error)
}

type clientChatService struct {
	state     *LocalState
	chart     adapter.ChartAPI
	garden    ClientGardenService
	alignment alignmentSource
	ids       idGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientChatService(
	state *LocalState,
	chart adapter.ChartAPI,
	garden ClientGardenService,
	alignment alignmentSource,
	ids idGenerator,
	logger *logger.Logger,
) ClientChatService {
	return &clientChatService{
		state:     state,
		chart:     chart,
		garden:    garden,
		alignment: alignment,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

func (c *clientChatService) History(guruID string) []models.Message {
	return c.state.Snapshot().MessagesFor(guruID)
}

// Greet sends the bare system prompt so the guru introduces themselves.
func (c *clientChatService) Greet(ctx context.Context, guruID string) (*models.Message, error) {
	snap := c.state.Snapshot()
	if len(snap.MessagesFor(guruID)) > 0 {
		return nil, nil
	}

	prompt := BuildSystemPrompt(models.GuruFor(guruID), snap, c.today())
	reply, err := c.ask(ctx, models.ChatRequest{Message: prompt, History: []models.ChatTurn{}})
	if err != nil {
		return nil, err
	}

	msg, err := c.store(ctx, guruID, models.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *clientChatService) Send(ctx context.Context, guruID, text string) (models.Message, models.Suggestions, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, models.Suggestions{}, ErrEmptyMessage
	}

	snap := c.state.Snapshot()
	prior := snap.MessagesFor(guruID)

	if _, err := c.store(ctx, guruID, models.RoleUser, text); err != nil {
		return models.Message{}, models.Suggestions{}, err
	}

	history := make([]models.ChatTurn, 0, len(prior)+2)
	history = append(history, models.ChatTurn{
		Role:    models.RoleSystem,
		Content: BuildSystemPrompt(models.GuruFor(guruID), snap, c.today()),
	})
	for _, m := range prior {
		history = append(history, models.ChatTurn{Role: m.Role, Content: m.Content})
	}
	if ctxUpdate := c.alignmentContext(ctx); ctxUpdate != "" {
		history = append(history, models.ChatTurn{Role: models.RoleSystem, Content: ctxUpdate})
	}

	reply, err := c.ask(ctx, models.ChatRequest{Message: text, History: history})
	if err != nil {
		return models.Message{}, models.Suggestions{}, err
	}

	msg, err := c.store(ctx, guruID, models.RoleAssistant, reply)
	if err != nil {
		return models.Message{}, models.Suggestions{}, err
	}
	suggestions := ParseSuggestions(reply)
	for _, payload := range suggestions.Dropped {
		c.logger.Debug().Str("func", "*clientChatService.Send").Str("guru_id", guruID).
			Str("payload", payload).Msg("malformed offer dropped")
	}
	return msg, suggestions, nil
}

// alignmentContext returns "" when the panchang is unavailable; the chat
// proceeds without it.
func (c *clientChatService) alignmentContext(ctx context.Context) string {
	if c.alignment == nil {
		return ""
	}
	a, err := c.alignment.Alignment(ctx)
	if err != nil || a == nil {
		if err != nil {
			c.logger.Debug().Err(err).Msg("alignment unavailable for chat context")
		}
		return ""
	}
	return AlignmentContext(a, c.now())
}

func (c *clientChatService) ask(ctx context.Context, req models.ChatRequest) (string, error) {
	resp, err := c.chart.Chat(ctx, req)
	if err != nil {
		c.logger.Err(err).Msg("chat request failed")
		return "", fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}
	if !resp.Success {
		return "", fmt.Errorf("%w: %s", ErrRemoteFailure, orDefault(resp.Error, "chat failed"))
	}
	return resp.Response, nil
}

func (c *clientChatService) store(ctx context.Context, guruID string, role models.Role, content string) (models.Message, error) {
	msg := models.Message{
		ClientSideID: c.ids.Generate(),
		GuruID:       guruID,
		Role:         role,
		Content:      content,
		Timestamp:    c.now().UnixMilli(),
	}
	if err := c.state.AppendMessage(ctx, msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (c *clientChatService) Restart(ctx context.Context, guruID string) error {
	n, err := c.state.ClearMessages(ctx, guruID)
	if err != nil {
		return err
	}
	c.logger.Info().Str("guru_id", guruID).Int("removed", n).Msg("conversation restarted")
	return nil
}

// AcceptSeedOffer plants the offer unless a seed with the same title is
// already in the garden, in which case that seed is returned.
func (c *clientChatService) AcceptSeedOffer(ctx context.Context, guruID string, offer models.SeedOffer) (models.Seed, error) {
	seeds := c.state.Snapshot().Seeds
	if i := slices.IndexFunc(seeds, func(s models.Seed) bool { return sameTitle(s.Title, offer.Title) }); i >= 0 {
		return seeds[i], nil
	}
	return c.garden.PlantSeed(ctx, offer, guruID)
}

func (c *clientChatService) AcceptWisdomOffer(ctx context.Context, guruID string, offer models.WisdomOffer) (models.WisdomNote, error) {
	notes := c.state.Snapshot().Wisdom
	if i := slices.IndexFunc(notes, func(w models.WisdomNote) bool { return sameTitle(w.Title, offer.Title) }); i >= 0 {
		return notes[i], nil
	}
	return c.garden.AddWisdom(ctx, offer, guruID)
}

func (c *clientChatService) today() string {
	return c.now().Format(time.DateOnly)
}

func sameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
