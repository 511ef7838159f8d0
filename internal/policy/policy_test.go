package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

func TestCanBookFor(t *testing.T) {
	tests := []struct {
		name     string
		actor    domain.Actor
		targetID int64
		want     bool
	}{
		{
			name:     "клиент бронирует для себя",
			actor:    domain.Actor{ID: 10, Role: domain.RoleUser},
			targetID: 10,
			want:     true,
		},
		{
			name:     "клиент не может бронировать для другого",
			actor:    domain.Actor{ID: 10, Role: domain.RoleUser},
			targetID: 11,
			want:     false,
		},
		{
			name:     "сотрудник не может бронировать для другого",
			actor:    domain.Actor{ID: 5, Role: domain.RoleEmployee},
			targetID: 11,
			want:     false,
		},
		{
			name:     "локальный админ бронирует для любого клиента",
			actor:    domain.Actor{ID: 1, Role: domain.RoleLocalAdmin},
			targetID: 42,
			want:     true,
		},
		{
			name:     "суперадмин бронирует для любого клиента",
			actor:    domain.Actor{ID: 1, Role: domain.RoleSuperAdmin},
			targetID: 42,
			want:     true,
		},
		{
			name:     "админ с некорректным клиентом",
			actor:    domain.Actor{ID: 1, Role: domain.RoleSuperAdmin},
			targetID: 0,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanBookFor(tt.actor, tt.targetID))
		})
	}
}

func TestCanModify(t *testing.T) {
	session := &domain.Session{ID: 1, UserID: 10, Status: domain.StatusBooked}
	slotOwnerID := int64(5)

	tests := []struct {
		name  string
		actor domain.Actor
		op    Operation
		want  bool
	}{
		{
			name:  "админ может завершить любую сессию",
			actor: domain.Actor{ID: 99, Role: domain.RoleLocalAdmin},
			op:    OpComplete,
			want:  true,
		},
		{
			name:  "сотрудник-владелец слота может завершить",
			actor: domain.Actor{ID: 5, Role: domain.RoleEmployee},
			op:    OpComplete,
			want:  true,
		},
		{
			name:  "чужой сотрудник не может завершить",
			actor: domain.Actor{ID: 6, Role: domain.RoleEmployee},
			op:    OpComplete,
			want:  false,
		},
		{
			name:  "клиент-владелец может отменить свою сессию",
			actor: domain.Actor{ID: 10, Role: domain.RoleUser},
			op:    OpCancel,
			want:  true,
		},
		{
			name:  "клиент-владелец не может завершить свою сессию",
			actor: domain.Actor{ID: 10, Role: domain.RoleUser},
			op:    OpComplete,
			want:  false,
		},
		{
			name:  "клиент-владелец не может менять статус",
			actor: domain.Actor{ID: 10, Role: domain.RoleUser},
			op:    OpChangeStatus,
			want:  false,
		},
		{
			name:  "чужой клиент не может отменить",
			actor: domain.Actor{ID: 11, Role: domain.RoleUser},
			op:    OpCancel,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.actor, session, slotOwnerID, tt.op))
		})
	}
}

func TestCanCancelNow(t *testing.T) {
	now := time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)
	client := domain.Actor{ID: 10, Role: domain.RoleUser}
	employee := domain.Actor{ID: 5, Role: domain.RoleEmployee}
	admin := domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}

	t.Run("ровно 24 часа до начала - можно", func(t *testing.T) {
		slotStart := now.Add(24 * time.Hour)
		assert.True(t, CanCancelNow(client, slotStart, now))
	})

	t.Run("чуть больше суток - можно", func(t *testing.T) {
		slotStart := now.Add(24*time.Hour + time.Minute)
		assert.True(t, CanCancelNow(client, slotStart, now))
	})

	t.Run("меньше суток - нельзя", func(t *testing.T) {
		slotStart := now.Add(23*time.Hour + 59*time.Minute)
		assert.False(t, CanCancelNow(client, slotStart, now))
	})

	t.Run("окно закрыто и для сотрудника", func(t *testing.T) {
		slotStart := now.Add(time.Hour)
		assert.False(t, CanCancelNow(employee, slotStart, now))
	})

	t.Run("админ обходит окно отмены", func(t *testing.T) {
		slotStart := now.Add(time.Hour)
		assert.True(t, CanCancelNow(admin, slotStart, now))
	})

	t.Run("админ может отменить даже после начала", func(t *testing.T) {
		slotStart := now.Add(-time.Hour)
		assert.True(t, CanCancelNow(admin, slotStart, now))
	})
}
