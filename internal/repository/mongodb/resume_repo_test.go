package mongodb

import (
	"sync"
	"testing"
	"time"

	"go-profile-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestBecomesActivePrimary(t *testing.T) {
	tests := []struct {
		name    string
		current domain.ResumeMetadata
		update  domain.ResumeUpdate
		want    bool
	}{
		{
			name:    "explicit promotion of an active resume",
			current: domain.ResumeMetadata{IsActive: true},
			update:  domain.ResumeUpdate{IsPrimary: boolPtr(true)},
			want:    true,
		},
		{
			name:    "reactivating a soft-deleted primary",
			current: domain.ResumeMetadata{IsActive: false, IsPrimary: true},
			update:  domain.ResumeUpdate{IsActive: boolPtr(true)},
			want:    true,
		},
		{
			name:    "reactivating a non-primary",
			current: domain.ResumeMetadata{IsActive: false, IsPrimary: false},
			update:  domain.ResumeUpdate{IsActive: boolPtr(true)},
			want:    false,
		},
		{
			name:    "renaming the current active primary",
			current: domain.ResumeMetadata{IsActive: true, IsPrimary: true},
			update:  domain.ResumeUpdate{FileName: strPtr("renamed.pdf")},
			want:    true,
		},
		{
			name:    "demoting the active primary",
			current: domain.ResumeMetadata{IsActive: true, IsPrimary: true},
			update:  domain.ResumeUpdate{IsPrimary: boolPtr(false)},
			want:    false,
		},
		{
			name:    "deactivating the active primary",
			current: domain.ResumeMetadata{IsActive: true, IsPrimary: true},
			update:  domain.ResumeUpdate{IsActive: boolPtr(false)},
			want:    false,
		},
		{
			name:    "promoting while deactivating",
			current: domain.ResumeMetadata{IsActive: true},
			update:  domain.ResumeUpdate{IsPrimary: boolPtr(true), IsActive: boolPtr(false)},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, becomesActivePrimary(&tt.current, &tt.update))
		})
	}
}

func strPtr(s string) *string { return &s }

func TestLockProfileSerializesSameProfile(t *testing.T) {
	repo := &resumeRepository{}

	unlock := repo.lockProfile("profile1")

	acquired := make(chan struct{})
	go func() {
		u := repo.lockProfile("profile1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second caller acquired the lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second caller never acquired the lock after release")
	}
}

func TestLockProfileIndependentProfiles(t *testing.T) {
	repo := &resumeRepository{}

	unlock1 := repo.lockProfile("profile1")
	defer unlock1()

	acquired := make(chan struct{})
	go func() {
		u := repo.lockProfile("profile2")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on a different profile should not block")
	}
}

func TestLockProfileReusesMutex(t *testing.T) {
	repo := &resumeRepository{}

	// Hammer the same key from many goroutines; LoadOrStore must hand every
	// caller the same mutex so the counter stays race-free.
	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := repo.lockProfile("profile1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
