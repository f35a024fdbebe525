package observers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/model"
)

// Signer подписывает тело запроса вебхука.
type Signer interface {
	Sign(data []byte) string
}

// HTTPObserver отправляет событие POST-запросом на вебхук.
// Отправка синхронная, повторных попыток нет.
type HTTPObserver struct {
	url    string
	signer Signer
	log    *zap.Logger
	client *http.Client
}

// NewHTTPObserver создаёт наблюдателя. signer может быть nil, тогда заголовок HashSHA256 не ставится.
func NewHTTPObserver(url string, signer Signer, log *zap.Logger) *HTTPObserver {
	return &HTTPObserver{
		url:    url,
		signer: signer,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log: log,
	}
}

func (h *HTTPObserver) Update(eventType string, data map[string]any) error {
	body, err := json.Marshal(model.NewAuditRecord(eventType, data))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.signer != nil {
		req.Header.Set("HashSHA256", h.signer.Sign(body))
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("send event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		h.log.Warn("Webhook rejected event",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	h.log.Debug("Successfully sent event", zap.Int("status", resp.StatusCode), zap.String("event_type", eventType))
	return nil
}
