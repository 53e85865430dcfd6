package config

import "fmt"

// UndefinedRuleError indicates that the schedule table has no entry under
// the given key. The message text is relied on by cluster log tooling,
// so it stays byte-for-byte stable.
type UndefinedRuleError struct {
	Key string
}

func (e *UndefinedRuleError) Error() string {
	return fmt.Sprintf("No schedule config found for %s", e.Key)
}

// RedirectError indicates a schedule alias that cannot be followed.
type RedirectError struct {
	Key    string
	Target string
	Reason string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("schedule config %s redirects to %q: %s", e.Key, e.Target, e.Reason)
}
