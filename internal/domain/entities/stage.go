package entities

// Stage represents the position of a work order (OS) in the repair lifecycle.
//
// Domain notes:
//   - The os-service-api is the source of truth for work-order stage state.
//   - Stages form a fixed linear sequence; Cancelled sits outside of it and
//     is reachable only through an explicit cancellation.
//   - Wire values are the Portuguese labels the shop UI renders.

type Stage string

const (
	StageReception         Stage = "recepcao"
	StageDiagnosis         Stage = "diagnostico"
	StagePendingQuote      Stage = "aguardando_orcamento"
	StageAwaitingApproval  Stage = "aguardando_aprovacao"
	StageAttentionRequired Stage = "atencao_requerida"
	StageInRepair          Stage = "em_reparo"
	StageQualityControl    Stage = "controle_qualidade"
	StageReadyForDelivery  Stage = "pronto_entrega"
	StageDelivered         Stage = "entregue"

	// StageCancelled has no position in StageOrder. NextOf/PreviousOf never
	// return it and reject it as input.
	StageCancelled Stage = "cancelada"
)

// StageOrder is the linear lifecycle. Delivered is the last element but is
// reachable only through delivery registration, never through an ordered
// advance.
var StageOrder = []Stage{
	StageReception,
	StageDiagnosis,
	StagePendingQuote,
	StageAwaitingApproval,
	StageAttentionRequired,
	StageInRepair,
	StageQualityControl,
	StageReadyForDelivery,
	StageDelivered,
}

// StageIndex returns the position of s in StageOrder, or -1 when s has no
// position (Cancelled or unknown).
func StageIndex(s Stage) int {
	for i, v := range StageOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// NextOf returns the stage after s. ok is false when s is the last element
// or has no position in the order.
func NextOf(s Stage) (Stage, bool) {
	i := StageIndex(s)
	if i < 0 || i+1 >= len(StageOrder) {
		return "", false
	}
	return StageOrder[i+1], true
}

// PreviousOf returns the stage before s. ok is false when s is the first
// element or has no position in the order.
func PreviousOf(s Stage) (Stage, bool) {
	i := StageIndex(s)
	if i <= 0 {
		return "", false
	}
	return StageOrder[i-1], true
}

// IsTerminal reports whether no further stage mutation is allowed.
func (s Stage) IsTerminal() bool {
	return s == StageDelivered || s == StageCancelled
}

// IsValid reports whether s is one of the defined stage values.
func (s Stage) IsValid() bool {
	return s == StageCancelled || StageIndex(s) >= 0
}
