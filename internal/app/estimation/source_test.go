package estimation

// Фейковый источник данных для тестов ядра - без БД
type fakeSource struct {
	project     *Project
	projectErr  error
	lines       []LineItem
	linesErr    error
	items       map[uint]*CatalogItem
	categories  []CategoryRef
	subElements map[uint]*CategoryRef // subElementID -> элемент затрат
	historic    []HistoricRecord
	historicErr error
	components  map[uint][]Component

	historicCalls []historicCall
}

type historicCall struct {
	categoryID    uint
	region        *string
	ageBand       *string
	conditionBand *string
}

func (f *fakeSource) GetProject(id uint) (*Project, error) {
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	if f.project == nil || f.project.ID != id {
		return nil, ErrProjectNotFound
	}
	return f.project, nil
}

func (f *fakeSource) GetActiveLineItems(projectID uint) ([]LineItem, error) {
	if f.linesErr != nil {
		return nil, f.linesErr
	}
	return f.lines, nil
}

func (f *fakeSource) GetCostItem(id uint) (*CatalogItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, ErrCostItemNotFound
	}
	return item, nil
}

func (f *fakeSource) GetCategoryForSubElement(subElementID uint) (*CategoryRef, error) {
	ref, ok := f.subElements[subElementID]
	if !ok {
		return nil, ErrCostItemNotFound
	}
	return ref, nil
}

func (f *fakeSource) GetCategories() ([]CategoryRef, error) {
	return f.categories, nil
}

func (f *fakeSource) QueryHistoric(categoryID uint, region, ageBand, conditionBand *string) ([]HistoricRecord, error) {
	f.historicCalls = append(f.historicCalls, historicCall{
		categoryID:    categoryID,
		region:        region,
		ageBand:       ageBand,
		conditionBand: conditionBand,
	})
	if f.historicErr != nil {
		return nil, f.historicErr
	}
	return f.historic, nil
}

func (f *fakeSource) GetActiveComponents(lineItemID uint) ([]Component, error) {
	return f.components[lineItemID], nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
