package dto

// CalculatorResponse pairs the structured result with its Markdown rendering.
type CalculatorResponse struct {
	Result   interface{} `json:"result"`
	Markdown string      `json:"markdown"`
}

// ProcedureRequest selects a procurement procedure by amount and object type.
type ProcedureRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	ObjectType string  `json:"object_type" validate:"required,oneof=bienes servicios consultoria obras"`
}

// PenaltyRequest computes the moratory penalty.
type PenaltyRequest struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	TermDays     int     `json:"term_days" validate:"required,gt=0"`
	DelayDays    int     `json:"delay_days" validate:"gte=0"`
	ContractType string  `json:"contract_type" validate:"required,oneof=bienes servicios consultoria obras"`
}

// DeadlineRequest computes a deadline from an explicit day count.
type DeadlineRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	Days      int    `json:"days" validate:"required,gte=0"`
	Kind      string `json:"kind" validate:"required,oneof=habiles calendario"`
}

// NamedDeadlineRequest computes a deadline from the statutory table.
type NamedDeadlineRequest struct {
	StartDate string `json:"start_date" validate:"required"`
}

// AppealFeeRequest resolves the fee and competent body for an appeal.
type AppealFeeRequest struct {
	ReferenceValue float64 `json:"reference_value" validate:"required,gt=0"`
}

// AppealDocumentRequest generates a full appeal document.
type AppealDocumentRequest struct {
	GrievanceType  string  `json:"grievance_type" validate:"required"`
	ProcessNumber  string  `json:"process_number" validate:"required"`
	Entity         string  `json:"entity" validate:"required"`
	Object         string  `json:"object" validate:"required"`
	ReferenceValue float64 `json:"reference_value" validate:"required,gt=0"`
	Notification   string  `json:"notification" validate:"required"`
	AppellantName  string  `json:"appellant_name" validate:"required"`
	AppellantRUC   string  `json:"appellant_ruc" validate:"required"`
	Address        string  `json:"address" validate:"required"`
	Representative string  `json:"representative" validate:"required"`
	ActAppealed    string  `json:"act_appealed" validate:"required"`
	Summary        string  `json:"summary" validate:"required"`
	Request        string  `json:"request" validate:"required"`
}

// AdditionalRequest classifies an additional against its statutory limit.
type AdditionalRequest struct {
	OriginalAmount   float64 `json:"original_amount" validate:"required,gt=0"`
	AdditionalAmount float64 `json:"additional_amount" validate:"required,gte=0"`
	Kind             string  `json:"kind" validate:"required,oneof=obras bienes_servicios deductivo_vinculado deductivo_no_vinculado"`
}

// ImpedimentRequest checks a role, a kinship relation, or both.
type ImpedimentRequest struct {
	Role             string `json:"role,omitempty"`
	MonthsSinceCease *int   `json:"months_since_cease,omitempty"`
	Kinship          string `json:"kinship,omitempty"`
	RelatedRole      string `json:"related_role,omitempty"`
}

// NullityRequest matches a case description against the nullity causals.
type NullityRequest struct {
	Description string `json:"description" validate:"required,min=10"`
	ConsentDate string `json:"consent_date,omitempty"`
}

// TechnicalEvaluationRequest verifies awarded technical scores.
type TechnicalEvaluationRequest struct {
	Factors       map[string]FactorDTO `json:"factors" validate:"required,min=1"`
	Awarded       map[string]float64   `json:"awarded" validate:"required,min=1"`
	DeclaredTotal float64              `json:"declared_total"`
}

// FactorDTO is one technical factor declared in the bases.
type FactorDTO struct {
	Max         float64 `json:"max" validate:"gte=0"`
	Methodology string  `json:"methodology,omitempty"`
}

// EconomicEvaluationRequest verifies awarded economic scores.
type EconomicEvaluationRequest struct {
	Proposals []EconomicProposalDTO `json:"proposals" validate:"required,min=1,dive"`
	MaxScore  float64               `json:"max_score" validate:"required,gt=0"`
}

// EconomicProposalDTO is one bid with its awarded economic score.
type EconomicProposalDTO struct {
	Bidder       string  `json:"bidder" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	AwardedScore float64 `json:"awarded_score" validate:"gte=0"`
}

// PrelationRequest verifies the awarded prelation order.
type PrelationRequest struct {
	Proposals []RankedProposalDTO `json:"proposals" validate:"required,min=1,dive"`
}

// RankedProposalDTO is one bid with its total score and awarded position.
type RankedProposalDTO struct {
	Bidder      string  `json:"bidder" validate:"required"`
	TotalScore  float64 `json:"total_score" validate:"gte=0"`
	AwardedRank int     `json:"awarded_rank" validate:"required,gte=1"`
}
