package plans

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/JanyW/sql-layer/storage/row"
)

/**
 * IndexScanPlanNode streams one store index in its declared order. It is the
 * leaf of a cursor tree; jumps map directly onto the index's physical seek.
 */
type IndexScanPlanNode struct {
	*AbstractPlanNode
	indexName string
}

func NewIndexScanPlanNode(rowType *row.RowType, indexName string) *IndexScanPlanNode {
	return &IndexScanPlanNode{&AbstractPlanNode{rowType, nil}, indexName}
}

func (p *IndexScanPlanNode) GetType() PlanType { return IndexScan }

func (p *IndexScanPlanNode) GetIndexName() string { return p.indexName }

func (p *IndexScanPlanNode) GetDebugStr() string {
	return fmt.Sprintf("index_scan(%s)", p.indexName)
}

func (p *IndexScanPlanNode) FindDerivedTypes(derivedTypes mapset.Set[*row.RowType]) {
	derivedTypes.Add(p.OutputRowType())
}
