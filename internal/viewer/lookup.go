package viewer

import "context"

// Lookup — один запущенный поиск: асинхронная задача с результатом-или-ошибкой.
type Lookup struct {
	uid   string
	done  chan struct{}
	err   error
	shown bool
}

func newLookup(uid string) *Lookup {
	return &Lookup{uid: uid, done: make(chan struct{})}
}

// finishedLookup — уже завершённый поиск (валидация не пропустила ввод).
func finishedLookup(uid string, err error) *Lookup {
	l := newLookup(uid)
	l.finish(err, true)
	return l
}

// UID — идентификатор после обрезки пробелов.
func (l *Lookup) UID() string { return l.uid }

// Done — закрывается, когда результат записан (или отброшен как устаревший).
func (l *Lookup) Done() <-chan struct{} { return l.done }

// Err — итог поиска; читать после Done.
func (l *Lookup) Err() error {
	<-l.done
	return l.err
}

// Shown — попал ли результат этого поиска в область отображения.
// false только для поиска, вытесненного более новым при WithLatestOnly.
func (l *Lookup) Shown() bool {
	<-l.done
	return l.shown
}

// Wait — ждёт завершения поиска или отмены ctx.
func (l *Lookup) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Lookup) finish(err error, shown bool) {
	l.err = err
	l.shown = shown
	close(l.done)
}
