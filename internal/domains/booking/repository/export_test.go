package repository

import "time"

// ShortenLockWait makes lock contention fail fast in tests.
func ShortenLockWait(wait, poll time.Duration) (restore func()) {
	oldWait, oldPoll := lockWait, lockPoll
	lockWait, lockPoll = wait, poll

	return func() {
		lockWait, lockPoll = oldWait, oldPoll
	}
}
