package entities

// ProjectStatusLabel is the client-facing, Spanish status label shown in
// the project list. Derived, never stored.
//
//   - "Completado" iff overall progress is 100.
//   - "En progreso" iff progress > 0 or any qualifying activity is
//     in progress (an in-progress activity moves the label but never
//     the percentage).
//   - "Por iniciar" otherwise.

type ProjectStatusLabel string

const (
	ProjectStatusPorIniciar ProjectStatusLabel = "Por iniciar"
	ProjectStatusEnProgreso ProjectStatusLabel = "En progreso"
	ProjectStatusCompletado ProjectStatusLabel = "Completado"
)
