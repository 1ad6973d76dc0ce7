// Package delivery isola o envio de broadcasts ZTalk atrás da porta
// usecase.BroadcastGateway. A implementação simulada reproduz o
// comportamento de um provedor real: latência de entrega e estatísticas
// agregadas aproximadas.
package delivery

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

var _ usecase.BroadcastGateway = (*Simulated)(nil)

// Simulated implementa a porta sem provedor externo: espera o atraso
// configurado e projeta taxas fixas de entrega sobre o total.
type Simulated struct {
	delay time.Duration
}

// NewSimulated constrói o gateway simulado. delay zero entrega imediatamente
// (útil em testes).
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

// Deliver espera o atraso de entrega e devolve estatísticas derivadas do
// número de destinatários: 100% enviadas, 95% entregues, 70% lidas, 5%
// falhas (pisos inteiros).
func (s *Simulated) Deliver(ctx context.Context, broadcast *entity.ZTalkBroadcast) (entity.BroadcastStats, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return entity.BroadcastStats{}, ctx.Err()
		case <-timer.C:
		}
	}
	n := len(broadcast.Recipients)
	return entity.BroadcastStats{
		Sent:      n,
		Delivered: n * 95 / 100,
		Read:      n * 70 / 100,
		Failed:    n * 5 / 100,
	}, nil
}
