package keymutex

// KeyCount reports how many keys are currently tracked. Test-only.
func (k *KeyedMutex) KeyCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
