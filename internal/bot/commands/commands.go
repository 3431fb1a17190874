package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homework-bot/internal/cache"
	"homework-bot/internal/config"
	"homework-bot/internal/db"
	"homework-bot/internal/practicum"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

const (
	statusCooldown = time.Minute
	historyLimit   = 10
)

type CommandHandler struct {
	Config      *config.Config
	Client      *practicum.Client
	DB          *db.DB // nil when history is disabled
	StatusLimit *cache.Cache[int64, time.Time]
}

func NewCommandHandler(cfg *config.Config, client *practicum.Client, database *db.DB) *CommandHandler {
	return &CommandHandler{
		Config:      cfg,
		Client:      client,
		DB:          database,
		StatusLimit: cache.New[int64, time.Time](),
	}
}

// allowed reports whether the update comes from the configured chat. The
// bot serves exactly one chat; everything else is ignored silently.
func (h *CommandHandler) allowed(ctx *ext.Context) bool {
	return ctx.EffectiveChat != nil && ctx.EffectiveChat.Id == h.Config.ChatID
}

func (h *CommandHandler) Start(b *gotgbot.Bot, ctx *ext.Context) error {
	if !h.allowed(ctx) {
		return nil
	}

	msg := `<b>Бот проверки домашних работ</b> 🤖

Я слежу за статусом твоей последней работы на Практикуме и присылаю сообщение, когда ревьюер его меняет.

Команды:
/status — текущий статус последней работы
/history — последние отправленные уведомления
/help — справка`
	_, err := ctx.EffectiveMessage.Reply(b, msg, &gotgbot.SendMessageOpts{ParseMode: "HTML"})
	return err
}

func (h *CommandHandler) Help(b *gotgbot.Bot, ctx *ext.Context) error {
	if !h.allowed(ctx) {
		return nil
	}

	msg := `<b>Команды</b>

/status — запросить текущий статус последней работы (не чаще раза в минуту)
/history — последние отправленные уведомления
/help — эта справка

Проверка статуса выполняется автоматически; интервал задаётся переменной POLL_INTERVAL.`
	_, err := ctx.EffectiveMessage.Reply(b, msg, &gotgbot.SendMessageOpts{ParseMode: "HTML"})
	return err
}

func (h *CommandHandler) Status(b *gotgbot.Bot, ctx *ext.Context) error {
	if !h.allowed(ctx) {
		return nil
	}

	userID := ctx.EffectiveUser.Id
	if last, ok := h.StatusLimit.Get(userID); ok {
		wait := statusCooldown - time.Since(last)
		_, err := ctx.EffectiveMessage.Reply(b,
			fmt.Sprintf("Слишком часто. Попробуй через %d сек.", int(wait.Seconds())+1), nil)
		return err
	}
	h.StatusLimit.Set(userID, time.Now(), statusCooldown)

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// from_date=1 asks for the full listing; 0 would be replaced with the
	// current time and return nothing.
	resp, err := h.Client.HomeworkStatuses(reqCtx, 1)
	if err != nil {
		_, rerr := ctx.EffectiveMessage.Reply(b, fmt.Sprintf("Не удалось получить статус: %v", err), nil)
		return rerr
	}

	homeworks, err := practicum.CheckResponse(resp)
	if err != nil {
		_, rerr := ctx.EffectiveMessage.Reply(b, "Пока нет ни одной домашней работы.", nil)
		return rerr
	}

	text, err := practicum.ParseStatus(homeworks[0])
	if err != nil {
		_, rerr := ctx.EffectiveMessage.Reply(b, fmt.Sprintf("Не удалось разобрать ответ API: %v", err), nil)
		return rerr
	}

	_, err = ctx.EffectiveMessage.Reply(b, text, nil)
	return err
}

func (h *CommandHandler) History(b *gotgbot.Bot, ctx *ext.Context) error {
	if !h.allowed(ctx) {
		return nil
	}

	if h.DB == nil {
		_, err := ctx.EffectiveMessage.Reply(b, "История уведомлений отключена (MONGODB_URI не задан).", nil)
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := h.DB.RecentNotifications(reqCtx, historyLimit)
	if err != nil {
		_, rerr := ctx.EffectiveMessage.Reply(b, "Не удалось прочитать историю уведомлений.", nil)
		return rerr
	}

	if len(items) == 0 {
		_, err := ctx.EffectiveMessage.Reply(b, "История пока пуста.", nil)
		return err
	}

	var sb strings.Builder
	sb.WriteString("Последние уведомления:\n")
	for _, n := range items {
		sb.WriteString(fmt.Sprintf("\n%s — %s", n.SentAt.Format("02.01 15:04"), n.Text))
	}

	_, err = ctx.EffectiveMessage.Reply(b, sb.String(), nil)
	return err
}
