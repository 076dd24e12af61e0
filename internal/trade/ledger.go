package trade

import (
	"sort"
	"sync"

	"github.com/funketh/shinobu-bot/internal/domain"
)

// queue - очередь отложенных изменений одного юзера со своим локом.
// Лок - не столько про параллелизм, сколько про дисциплину: пока идет раунд
// подписания, вторая команда того же юзера не должна видеть полусобранную
// пачку.
type queue struct {
	mu      sync.Mutex
	changes []Change
}

// Ledger - реестр несовершенных транзакций: по одной очереди на юзера.
// Очереди создаются явно при первом обращении и живут только в памяти
// процесса; рестарт их теряет (осознанное ограничение, а не баг).
type Ledger struct {
	mu     sync.Mutex
	queues map[int64]*queue
}

func NewLedger() *Ledger {
	return &Ledger{queues: make(map[int64]*queue)}
}

func (l *Ledger) queueFor(userID int64) *queue {
	l.mu.Lock()
	defer l.mu.Unlock()
	q, ok := l.queues[userID]
	if !ok {
		q = new(queue)
		l.queues[userID] = q
	}
	return q
}

// Enqueue ставит изменение в конец очереди юзера.
func (l *Ledger) Enqueue(userID int64, c Change) {
	q := l.queueFor(userID)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.changes = append(q.changes, c)
}

// Cancel очищает очередь юзера. Если очередь пуста, отменять нечего -
// возвращается domain.ErrNotInTransaction.
func (l *Ledger) Cancel(userID int64) error {
	q := l.queueFor(userID)
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.changes) == 0 {
		return domain.ErrNotInTransaction
	}
	q.changes = nil
	return nil
}

// Pending сообщает, есть ли у юзера отложенные изменения.
func (l *Ledger) Pending(userID int64) bool {
	q := l.queueFor(userID)
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.changes) > 0
}

// ForbidOpen возвращает domain.ErrInTransaction, если у юзера открыта
// транзакция. Им ограждаются действия, запрещенные во время транзакции
// (покупка пака, апгрейд, возврат).
func (l *Ledger) ForbidOpen(userID int64) error {
	if l.Pending(userID) {
		return domain.ErrInTransaction
	}
	return nil
}

// RequireOpen возвращает domain.ErrNotInTransaction, если очередь юзера
// пуста. Им ограждаются действия, требующие открытой транзакции (подписание).
func (l *Ledger) RequireOpen(userID int64) error {
	if !l.Pending(userID) {
		return domain.ErrNotInTransaction
	}
	return nil
}

// UserChanges - очередь одного подписанта на момент захвата локов.
type UserChanges struct {
	UserID  int64
	Changes []Change
}

// WithLocked захватывает локи очередей всех userIDs (с дедупликацией) в
// порядке возрастания id - фиксированный порядок исключает взаимную
// блокировку двух встречных подписаний. fn получает очереди в том же порядке
// и функцию clear, очищающую их все; локи снимаются на любом пути выхода.
func (l *Ledger) WithLocked(userIDs []int64, fn func(batches []UserChanges, clear func()) error) error {
	ids := dedupeSorted(userIDs)

	queues := make([]*queue, len(ids))
	for i, id := range ids {
		queues[i] = l.queueFor(id)
	}
	for _, q := range queues {
		q.mu.Lock()
	}
	defer func() {
		for _, q := range queues {
			q.mu.Unlock()
		}
	}()

	batches := make([]UserChanges, len(ids))
	for i, id := range ids {
		batches[i] = UserChanges{UserID: id, Changes: queues[i].changes}
	}
	clear := func() {
		for _, q := range queues {
			q.changes = nil
		}
	}
	return fn(batches, clear)
}

func dedupeSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
