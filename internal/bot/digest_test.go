package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/ledger"
	"github.com/sokchea/rielbot/internal/store"
)

type fakeSession struct {
	messages []string
	channels []string
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channels = append(f.channels, channelID)
	f.messages = append(f.messages, content)
	return &discordgo.Message{}, nil
}

func TestDigestPostsOncePerDay(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	yesterday := time.Now().AddDate(0, 0, -1).Format(ledger.DateLayout)
	mem.Append(ctx, store.Entry{Date: yesterday, KHR: 50000})

	svc := ledger.NewService(mem)
	session := &fakeSession{}
	w := newDigestWorker(session, svc, "digest-channel")

	// Pretend the digest for today has not been posted yet.
	w.sentFor = ""
	w.tick(ctx)

	if len(session.messages) != 1 {
		t.Fatalf("expected 1 digest message, got %d", len(session.messages))
	}
	if session.channels[0] != "digest-channel" {
		t.Errorf("posted to channel %s, want digest-channel", session.channels[0])
	}
	if !strings.Contains(session.messages[0], "50,000") {
		t.Errorf("digest = %q, want yesterday's KHR total", session.messages[0])
	}
	if !strings.Contains(session.messages[0], "ស្វ័យប្រវត្តិ") {
		t.Errorf("digest = %q, want the automatic-post marker", session.messages[0])
	}

	// Same day again: nothing should be sent.
	w.tick(ctx)
	if len(session.messages) != 1 {
		t.Errorf("digest was re-posted on the same day")
	}
}

func TestDigestNilWorkerIsSafe(t *testing.T) {
	var w *digestWorker
	w.start()
	w.stop()
}
