package bot

import (
	"context"
	"log"
	"math/rand"
	"net"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/commands"
	"github.com/sokchea/rielbot/internal/ledger"
)

// digestWorker posts yesterday's summary to a configured channel once
// per calendar day.
type digestWorker struct {
	svc       *ledger.Service
	session   digestSession
	channelID string
	stopChan  chan struct{}
	ticker    *time.Ticker
	interval  time.Duration
	sentFor   string // date the last digest was posted on
}

// Minimal session interface for sending channel messages.
type digestSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func newDigestWorker(session digestSession, svc *ledger.Service, channelID string) *digestWorker {
	return &digestWorker{
		svc:       svc,
		session:   session,
		channelID: channelID,
		stopChan:  make(chan struct{}),
		interval:  time.Minute,
	}
}

func (w *digestWorker) start() {
	if w == nil {
		return
	}
	// Treat the start day as already posted so a restart does not repost.
	w.sentFor = w.svc.Now().Format(ledger.DateLayout)
	w.ticker = time.NewTicker(w.interval)
	go w.loop()
}

func (w *digestWorker) stop() {
	if w == nil {
		return
	}
	close(w.stopChan)
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *digestWorker) loop() {
	ctx := context.Background()
	for {
		select {
		case <-w.ticker.C:
			w.tick(ctx)
		case <-w.stopChan:
			return
		}
	}
}

func (w *digestWorker) tick(ctx context.Context) {
	today := w.svc.Now().Format(ledger.DateLayout)
	if today == w.sentFor {
		return
	}

	msg, err := commands.SummaryText(ctx, w.svc, ledger.Yesterday(w.svc.Now()))
	if err != nil {
		log.Printf("digest: failed to build summary: %v", err)
		return
	}
	autoMsg := msg + "\n\n🤖 សារនេះត្រូវបានផ្ញើដោយស្វ័យប្រវត្តិ"
	if err := w.sendWithRetry(ctx, w.channelID, autoMsg); err != nil {
		log.Printf("digest: failed to send message to channel %s: %v", w.channelID, err)
		return
	}
	w.sentFor = today
}

func (w *digestWorker) sendWithRetry(ctx context.Context, channelID, content string) error {
	const attemptTimeout = 12 * time.Second
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := w.session.ChannelMessageSend(channelID, content, discordgo.WithContext(sendCtx))
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTemporaryOrTimeout(err) {
			return err
		}
		time.Sleep(time.Duration(300+rand.Intn(500)) * time.Millisecond)
	}
	return lastErr
}

func isTemporaryOrTimeout(err error) bool {
	if err == nil {
		return false
	}
	if ne, ok := err.(net.Error); ok {
		return ne.Timeout() || ne.Temporary()
	}
	return false
}
