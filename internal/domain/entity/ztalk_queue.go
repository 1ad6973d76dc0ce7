package entity

// WorkingHours é a janela de expediente de uma fila.
// Start e End no formato "HH:MM"; Days usa 0=domingo ... 6=sábado.
type WorkingHours struct {
	Start string
	End   string
	Days  []int
}

// ZTalkQueue é uma fila de atendimento: membros, distribuição automática
// e capacidade máxima de conversas simultâneas.
type ZTalkQueue struct {
	ID               string
	Name             string
	Description      string
	Members          []string
	AutoAssign       bool
	MaxConversations int
	WorkingHours     WorkingHours
	IsActive         bool
}
