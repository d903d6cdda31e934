package logx

// discard drops every entry. Services fall back to it when no logger is wired.
type discard struct{}

var _ Logger = discard{}

// Nop returns a Logger that writes nothing.
func Nop() Logger { return discard{} }

// OrNop returns l, or the discarding logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return discard{}
	}
	return l
}

func (discard) Debug(string, ...Field) {}

func (discard) Info(string, ...Field) {}

func (discard) Warn(string, ...Field) {}

func (discard) Error(string, ...Field) {}

func (d discard) With(...Field) Logger { return d }

func (discard) Sync() error { return nil }
