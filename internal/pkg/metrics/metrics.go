package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LoginAttempts counts login attempts by result (success, failure).
var LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "attendance_login_attempts_total",
	Help: "Login attempts by result.",
}, []string{"result"})

// AttendanceRecordsMarked counts attendance rows written.
var AttendanceRecordsMarked = promauto.NewCounter(prometheus.CounterOpts{
	Name: "attendance_records_marked_total",
	Help: "Attendance records written.",
})

// TokensRevoked counts tokens placed on the deny-list.
var TokensRevoked = promauto.NewCounter(prometheus.CounterOpts{
	Name: "attendance_tokens_revoked_total",
	Help: "Tokens revoked via logout.",
})
