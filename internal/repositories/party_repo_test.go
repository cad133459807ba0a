package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PartyRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     PartyRepository
	tenantID uuid.UUID
	partyID  uuid.UUID
	context  context.Context
}

func (suite *PartyRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewPartyRepo(mock)
	suite.tenantID = uuid.New()
	suite.partyID = uuid.New()
	suite.context = context.Background()
}

func (suite *PartyRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestPartyRepoTestSuite(t *testing.T) {
	suite.Run(t, new(PartyRepoTestSuite))
}

func partyRowColumns() []string {
	return []string{"id", "tenant_id", "name", "type", "contact_phone", "address", "opening_balance", "opening_balance_date", "created_at", "updated_at"}
}

func (suite *PartyRepoTestSuite) partyRow(party *models.Party) *pgxmock.Rows {
	return pgxmock.NewRows(partyRowColumns()).
		AddRow(party.ID, party.TenantID, party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate, party.CreatedAt, party.UpdatedAt)
}

func (suite *PartyRepoTestSuite) TestCreate_Success() {
	party := &models.Party{
		ID:             uuid.New(),
		TenantID:       suite.tenantID,
		Name:           "Ramesh",
		Type:           models.PartyTypeCustomer,
		OpeningBalance: 500,
	}

	suite.mock.ExpectExec(`INSERT INTO parties`).
		WithArgs(party.ID, party.TenantID, party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, party)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *PartyRepoTestSuite) TestGetByID_Success() {
	openingDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	party := &models.Party{
		ID:                 suite.partyID,
		TenantID:           suite.tenantID,
		Name:               "Ramesh",
		Type:               models.PartyTypeCustomer,
		OpeningBalance:     500,
		OpeningBalanceDate: &openingDate,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, suite.partyID).
		WillReturnRows(suite.partyRow(party))

	got, err := suite.repo.GetByID(suite.context, suite.tenantID, suite.partyID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ramesh", got.Name)
	assert.Equal(suite.T(), 500.0, got.OpeningBalance)
	assert.NotNil(suite.T(), got.OpeningBalanceDate)
}

func (suite *PartyRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, suite.partyID).
		WillReturnError(pgx.ErrNoRows)

	got, err := suite.repo.GetByID(suite.context, suite.tenantID, suite.partyID)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *PartyRepoTestSuite) TestGetByName_Success() {
	party := &models.Party{
		ID:       suite.partyID,
		TenantID: suite.tenantID,
		Name:     "Feeds Co",
		Type:     models.PartyTypeSupplier,
	}

	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 AND name = \$2`).
		WithArgs(suite.tenantID, "Feeds Co").
		WillReturnRows(suite.partyRow(party))

	got, err := suite.repo.GetByName(suite.context, suite.tenantID, "Feeds Co")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PartyTypeSupplier, got.Type)
}

func (suite *PartyRepoTestSuite) TestUpdate_Success() {
	party := &models.Party{
		ID:             suite.partyID,
		TenantID:       suite.tenantID,
		Name:           "Ramesh",
		Type:           models.PartyTypeCustomer,
		OpeningBalance: 750,
	}

	suite.mock.ExpectExec(`UPDATE parties`).
		WithArgs(party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate, party.TenantID, party.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, party)
	assert.NoError(suite.T(), err)
}

func (suite *PartyRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM parties WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, suite.partyID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.tenantID, suite.partyID)
	assert.NoError(suite.T(), err)
}

func (suite *PartyRepoTestSuite) TestList_Success() {
	p1 := &models.Party{ID: uuid.New(), TenantID: suite.tenantID, Name: "Anand", Type: models.PartyTypeCustomer}
	p2 := &models.Party{ID: uuid.New(), TenantID: suite.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer}

	rows := pgxmock.NewRows(partyRowColumns()).
		AddRow(p1.ID, p1.TenantID, p1.Name, p1.Type, p1.ContactPhone, p1.Address, p1.OpeningBalance, p1.OpeningBalanceDate, p1.CreatedAt, p1.UpdatedAt).
		AddRow(p2.ID, p2.TenantID, p2.Name, p2.Type, p2.ContactPhone, p2.Address, p2.OpeningBalance, p2.OpeningBalanceDate, p2.CreatedAt, p2.UpdatedAt)

	suite.mock.ExpectQuery(`(?s)SELECT .+ FROM parties.+WHERE tenant_id = \$1.+LIMIT \$2 OFFSET \$3`).
		WithArgs(suite.tenantID, 50, 0).
		WillReturnRows(rows)

	parties, err := suite.repo.List(suite.context, suite.tenantID, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), parties, 2)
	assert.Equal(suite.T(), "Anand", parties[0].Name)
}

func (suite *PartyRepoTestSuite) TestListAll_Empty() {
	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 ORDER BY name ASC`).
		WithArgs(suite.tenantID).
		WillReturnRows(pgxmock.NewRows(partyRowColumns()))

	parties, err := suite.repo.ListAll(suite.context, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), parties)
}

func (suite *PartyRepoTestSuite) TestSearch_WithQueryAndType() {
	partyType := models.PartyTypeCustomer
	filter := &models.PartySearchFilter{Query: "Ram", Type: &partyType, SortBy: "name", SortOrder: "asc"}

	p := &models.Party{ID: uuid.New(), TenantID: suite.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer}

	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 AND \(name ILIKE \$2 OR COALESCE\(contact_phone, ''\) ILIKE \$2\) AND type = \$3 ORDER BY name ASC LIMIT \$4`).
		WithArgs(suite.tenantID, "%Ram%", partyType, 50).
		WillReturnRows(suite.partyRow(p))

	parties, err := suite.repo.Search(suite.context, suite.tenantID, filter)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), parties, 1)
}

func (suite *PartyRepoTestSuite) TestSearch_RejectsUnknownSortField() {
	filter := &models.PartySearchFilter{SortBy: "name; DROP TABLE parties", SortOrder: "desc"}

	suite.mock.ExpectQuery(`SELECT .+ FROM parties WHERE tenant_id = \$1 ORDER BY name DESC LIMIT \$2`).
		WithArgs(suite.tenantID, 50).
		WillReturnRows(pgxmock.NewRows(partyRowColumns()))

	_, err := suite.repo.Search(suite.context, suite.tenantID, filter)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *PartyRepoTestSuite) TestCreate_DatabaseError() {
	party := &models.Party{ID: uuid.New(), TenantID: suite.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer}

	suite.mock.ExpectExec(`INSERT INTO parties`).
		WithArgs(party.ID, party.TenantID, party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate).
		WillReturnError(errors.New("connection refused"))

	err := suite.repo.Create(suite.context, party)
	assert.Error(suite.T(), err)
}
