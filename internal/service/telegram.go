package service

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"divscan-go/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramService struct {
	bot       *tgbotapi.BotAPI
	chatID    int64
	startedAt time.Time
	scanFn    func() []*model.SymbolScan
}

func NewTelegramService(token, chatID string) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Printf("✅ Telegram bot authorized: %s", bot.Self.UserName)

	service := &TelegramService{
		bot:       bot,
		chatID:    parseChatID(chatID),
		startedAt: time.Now(),
	}

	SafeGo("telegram commands", service.handleCommands)
	log.Println("✅ Telegram command handler started")

	return service, nil
}

// SetScanHandler registers the callback the /scan command triggers.
// The scanner wires itself in after construction.
func (s *TelegramService) SetScanHandler(fn func() []*model.SymbolScan) {
	s.scanFn = fn
}

// SendScanSummary pushes one message per symbol that carries a signal
func (s *TelegramService) SendScanSummary(scans []*model.SymbolScan) {
	for _, scan := range scans {
		if !scan.HasSignal() {
			continue
		}
		if err := s.send(formatScanMessage(scan)); err != nil {
			log.Printf("⚠️  [Telegram] Failed to send %s summary: %v", scan.Symbol, err)
		}
	}
}

// handleCommands listens for and processes Telegram commands
func (s *TelegramService) handleCommands() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := s.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		command := update.Message.Command()
		chatID := update.Message.Chat.ID

		switch command {
		case "start":
			log.Println("📱 /start command executed")
			s.sendTo(chatID, formatStartMessage())
		case "status":
			log.Println("📱 /status command executed")
			s.sendTo(chatID, formatStatusMessage(s.startedAt))
		case "scan":
			log.Println("📱 /scan command executed")
			if s.scanFn == nil {
				s.sendTo(chatID, "⏳ Scanner is not ready yet.")
				continue
			}
			s.sendTo(chatID, "🔍 Scanning, one moment...")
			for _, scan := range s.scanFn() {
				s.sendTo(chatID, formatScanMessage(scan))
			}
		}
	}
}

func (s *TelegramService) send(text string) error {
	return s.sendTo(s.chatID, text)
}

func (s *TelegramService) sendTo(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

func parseChatID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("⚠️  [Telegram] Invalid chat ID %q: %v", raw, err)
		return 0
	}
	return id
}
