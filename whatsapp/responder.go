package whatsapp

import (
	"context"
	"time"

	"novonexbot/database"
	"novonexbot/dispatcher"
	"novonexbot/menu"
	"novonexbot/metrics"
	"novonexbot/session"
	"novonexbot/utils"

	waTypes "go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
)

// Sender delivers replies to WhatsApp.
type Sender interface {
	SendReply(ctx context.Context, to waTypes.JID, reply menu.Reply) error
	SendContacts(ctx context.Context, to waTypes.JID, contacts []menu.Contact) error
}

// Recorder keeps the contact and inquiry log.
type Recorder interface {
	RecordMessage(jid, pushName string, at time.Time) error
	RecordInquiry(jid, serviceID string, known bool) error
}

type DatabaseRecorder struct{}

func (DatabaseRecorder) RecordMessage(jid, pushName string, at time.Time) error {
	return database.ContactTouch(jid, pushName, at)
}

func (DatabaseRecorder) RecordInquiry(jid, serviceID string, known bool) error {
	return database.InquiryAdd(jid, serviceID, known)
}

const (
	ignoreGroup       = "group"
	ignoreBroadcast   = "broadcast"
	ignoreFromMe      = "from_me"
	ignoreChat        = "ignored_chat"
	ignoreRateLimited = "rate_limited"
)

type Responder struct {
	Store    session.Store
	Sender   Sender
	Recorder Recorder
	Limiter  *utils.MapLimiter
	Logger   *zap.Logger

	IgnoreChats      []string
	SendContactCards bool

	now func() time.Time
}

func NewResponder(store session.Store, sender Sender, recorder Recorder, logger *zap.Logger) *Responder {
	return &Responder{
		Store:    store,
		Sender:   sender,
		Recorder: recorder,
		Logger:   logger,
		now:      time.Now,
	}
}

// Handle answers one inbound message. Failures are logged and never
// returned: the user simply gets no reply.
func (r *Responder) Handle(ctx context.Context, in Inbound) {
	logger := r.Logger
	defer logger.Sync()

	if !in.HasMessage {
		return
	}

	if reason := r.ignoreReason(in); reason != "" {
		metrics.MessagesIgnored.WithLabelValues(reason).Inc()
		logger.Debug("ignoring message",
			zap.String("reason", reason),
			zap.String("chat_jid", in.Chat.String()),
		)
		return
	}

	userID := in.Chat.ToNonAD().String()

	if !r.Limiter.Allow(userID, r.clock()) {
		metrics.MessagesIgnored.WithLabelValues(ignoreRateLimited).Inc()
		logger.Debug("ignoring message",
			zap.String("reason", ignoreRateLimited),
			zap.String("chat_jid", userID),
		)
		return
	}
	metrics.MessagesReceived.Inc()

	current, err := r.Store.Get(ctx, userID)
	if err != nil {
		logger.Warn("failed to load user state, starting over",
			zap.String("chat_jid", userID),
			zap.Error(err),
		)
		current = session.NewUserState()
	}

	res := dispatcher.Dispatch(current, in.Text)

	logger.Debug("dispatched message",
		zap.String("chat_jid", userID),
		zap.String("text", in.Text),
		zap.String("step", string(current.Step)),
		zap.Int("page", current.Page),
		zap.String("branch", string(res.Branch)),
	)

	if err := r.Store.Set(ctx, userID, res.Next); err != nil {
		logger.Error("failed to save user state",
			zap.String("chat_jid", userID),
			zap.Error(err),
		)
	}

	r.record(userID, in, res)

	if res.Reply == nil {
		return
	}

	if err := r.Sender.SendReply(ctx, in.Chat, *res.Reply); err != nil {
		metrics.SendFailures.WithLabelValues(string(res.Branch)).Inc()
		logger.Error("failed to send reply",
			zap.String("chat_jid", userID),
			zap.String("branch", string(res.Branch)),
			zap.Error(err),
		)
		return
	}
	metrics.RepliesSent.WithLabelValues(string(res.Branch)).Inc()

	if res.Branch == dispatcher.BranchContact && r.SendContactCards {
		if err := r.Sender.SendContacts(ctx, in.Chat, menu.ContactCards()); err != nil {
			logger.Error("failed to send contact cards",
				zap.String("chat_jid", userID),
				zap.Error(err),
			)
		}
	}
}

func (r *Responder) ignoreReason(in Inbound) string {
	switch {
	case in.IsGroup || in.Chat.Server == waTypes.GroupServer:
		return ignoreGroup
	case in.Chat.Server == waTypes.BroadcastServer:
		return ignoreBroadcast
	case in.IsFromMe:
		return ignoreFromMe
	case utils.WaIsIgnoredChat(in.Chat, r.IgnoreChats):
		return ignoreChat
	}
	return ""
}

func (r *Responder) record(userID string, in Inbound, res dispatcher.Result) {
	if r.Recorder == nil {
		return
	}

	at := in.Timestamp
	if at.IsZero() {
		at = r.clock()
	}

	if err := r.Recorder.RecordMessage(userID, in.PushName, at); err != nil {
		r.Logger.Error("failed to record contact",
			zap.String("chat_jid", userID),
			zap.Error(err),
		)
	}

	if res.Branch != dispatcher.BranchService {
		return
	}

	_, known := menu.ServiceDetail(res.ServiceID)
	if err := r.Recorder.RecordInquiry(userID, res.ServiceID, known); err != nil {
		r.Logger.Error("failed to record inquiry",
			zap.String("chat_jid", userID),
			zap.String("service_id", res.ServiceID),
			zap.Error(err),
		)
	}
}

func (r *Responder) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}
