// Package debounce agenda uma função para rodar após um período sem novos disparos.
// Cada Trigger cancela o agendamento anterior, então só o último chega a executar.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	timer      *time.Timer
	generation uint64
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger cancela a execução pendente e agenda fn para daqui a delay
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.generation++
	current := d.generation

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Um Trigger ou Cancel posterior invalida esta execução
		if d.generation != current {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Cancel descarta a execução pendente. Retorna true se havia alguma.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.timer != nil
	d.stopLocked()
	d.generation++

	return pending
}

// Pending indica se existe execução agendada
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
