package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"golang.org/x/time/rate"
)

// Telegram allows roughly one message per second per chat; a small burst
// lets startup and error messages go out back to back.
const (
	sendsPerSecond = 1
	sendBurst      = 3
)

// SendError is a failed delivery to Telegram.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telegram send failed: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Notifier delivers text messages to one fixed chat.
type Notifier struct {
	bot     *gotgbot.Bot
	chatID  int64
	limiter *rate.Limiter
	log     *slog.Logger
}

func New(bot *gotgbot.Bot, chatID int64, log *slog.Logger) *Notifier {
	return &Notifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(sendsPerSecond), sendBurst),
		log:     log,
	}
}

// Send delivers text to the configured chat, honoring the rate limit.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return &SendError{Err: err}
	}

	if _, err := n.bot.SendMessage(n.chatID, text, nil); err != nil {
		n.log.Error("telegram send failed", slog.String("error", err.Error()))
		return &SendError{Err: err}
	}

	n.log.Info("message sent", slog.Int64("chat_id", n.chatID), slog.String("text", text))
	return nil
}
