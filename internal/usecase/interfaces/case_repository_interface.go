package interfaces

import (
	"context"
	"vehicle_acquisition/internal/domain/entities"
)

// ICaseRepository abstracts the document store holding case aggregates.
//
// The case document embeds the snapshots of the collaborator-owned records
// (customer, vehicle, inspection, quote, transaction). The workflow only ever
// rewrites the case-owned fields through UpdateWorkflow. MarkPDFGenerated only
// sets the pdf flags of the completion checklist and the last activity, so it
// never overwrites stage state written concurrently.
//
// Lookups of a missing case return a zero-value aggregate (Case.ID == "").

type ICaseRepository interface {
	Create(ctx context.Context, agg entities.CaseAggregate) (entities.CaseAggregate, error)
	GetAggregate(ctx context.Context, id string) (entities.CaseAggregate, error)
	UpdateWorkflow(ctx context.Context, c entities.Case) (entities.Case, error)
	MarkPDFGenerated(ctx context.Context, id string, activity entities.LastActivity) (entities.Case, error)
}
