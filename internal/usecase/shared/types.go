package shared

// Write-side snapshots keep commands independent of the read-side views.

type RoomSnapshot struct {
	ID       int64
	Name     string
	Capacity int
}

type UserSnapshot struct {
	ID           int64
	Username     string
	Role         string
	IsActive     bool
	PasswordHash string
}
