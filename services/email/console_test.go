package emailsvc

import (
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/edulearn/core"
)

type recordingLogger struct {
	loggerMock
	infos []string
}

func (l *recordingLogger) Info(msg string, args ...interface{}) { l.infos = append(l.infos, msg) }

func TestConsoleService_send(t *testing.T) {
	logger := new(recordingLogger)
	svc := NewConsoleService(core.NewTestConfig(), logger).(*consoleService)

	msg := core.EmailMessage{
		To:          []mail.Address{{Name: "John Doe", Address: "student@example.com"}},
		Subject:     "Hello",
		TextContent: "plain body",
		HTMLContent: "<p>html body</p>",
	}
	require.NoError(t, svc.send(msg))
	require.Len(t, logger.infos, 1)

	out := logger.infos[0]
	assert.True(t, strings.Contains(out, "Subject: [EduLearn] Hello\r\n"), out)
	assert.True(t, strings.Contains(out, `To: "John Doe" <student@example.com>`), out)
	assert.True(t, strings.Contains(out, "plain body"), out)
	assert.True(t, strings.Contains(out, "<p>html body</p>"), out)
}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	ResetSentMessages()
	logger := new(recordingLogger)
	svc := NewConsoleServiceMock(core.NewTestConfig(), logger)

	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{{Address: "a@example.com"}}, Subject: "a", BodyStr: "hello"},
		&core.EmailMessage{To: []mail.Address{{Address: "b@example.com"}}, Subject: "empty"},
		&core.EmailMessage{Subject: "no recipients", BodyStr: "hello"},
	)

	msgs := GetSentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "a", msgs[0].Subject)
	assert.Equal(t, "hello", msgs[0].TextContent)
	assert.Empty(t, logger.infos)

	ResetSentMessages()
	assert.Empty(t, GetSentMessages())
}
