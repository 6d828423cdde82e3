package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/cli"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils"
	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	dir string
	db  string
}

func (suite *CLITestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.db = filepath.Join(suite.dir, "ledger.db")
	suite.T().Setenv("STORE_DRIVER", "sqlite")
	suite.T().Setenv("JWT_SECRET", "")
	suite.T().Setenv("AMQP_URL", "")
}

// run executes the CLI against the suite database and returns stdout.
func (suite *CLITestSuite) run(args ...string) (string, error) {
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", suite.db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (suite *CLITestSuite) mustJSON(into any, args ...string) {
	out, err := suite.run(append(args, "--json")...)
	suite.Require().NoError(err, out)
	suite.Require().NoError(json.Unmarshal([]byte(out), into), out)
}

func (suite *CLITestSuite) addAccount(name, class, opening string) domain.Account {
	args := []string{"account", "add", name, "--class", class}
	if opening != "" {
		args = append(args, "--opening", opening)
	}
	var acc domain.Account
	suite.mustJSON(&acc, args...)
	return acc
}

func (suite *CLITestSuite) TestEntriesTransfersAndBalances() {
	cash := suite.addAccount("Cash", "asset", "1000.00")
	savings := suite.addAccount("Savings", "asset", "")
	suite.Equal(int64(100000), cash.OpeningBalance)

	var txn dto.TransactionResponse
	suite.mustJSON(&txn, "tx", "add", "--account", itoa(cash.AccountID), "--amount", "25.50",
		"--category", "Food & Dining", "--desc", "Lunch", "--date", "2024-03-05")
	suite.Equal(int64(-2550), txn.Amount)

	var transfer dto.TransferResponse
	suite.mustJSON(&transfer, "transfer", "--from", itoa(cash.AccountID), "--to", itoa(savings.AccountID),
		"--amount", "100", "--date", "2024-03-06")
	suite.Equal(int64(-10000), transfer.From.Amount)
	suite.Equal(int64(10000), transfer.To.Amount)

	var balances []domain.AccountBalance
	suite.mustJSON(&balances, "account", "balances")
	got := map[string]int64{}
	for _, b := range balances {
		got[b.Name] = b.Balance
	}
	suite.Equal(map[string]int64{"Cash": 87450, "Savings": 10000}, got)

	out, err := suite.run("report", "balance-sheet", "--query", "$.totalAssets")
	suite.Require().NoError(err)
	suite.Equal("97450", strings.TrimSpace(out))

	var pnl domain.ProfitAndLossReport
	suite.mustJSON(&pnl, "report", "pnl", "--month", "2024-03")
	suite.Equal(int64(2550), pnl.TotalExpense)
	suite.Equal(int64(-2550), pnl.NetIncome)

	var deleted dto.DeleteTransactionResponse
	suite.mustJSON(&deleted, "tx", "delete", itoa(transfer.From.TransactionID))
	suite.ElementsMatch([]int64{transfer.From.TransactionID, transfer.To.TransactionID}, deleted.DeletedTransactionIDs)

	var verify dto.VerifyContainerResponse
	suite.mustJSON(&verify, "verify")
	suite.True(verify.Consistent)
}

func (suite *CLITestSuite) TestTransferToSameAccountFails() {
	cash := suite.addAccount("Cash", "asset", "10")

	_, err := suite.run("transfer", "--from", itoa(cash.AccountID), "--to", itoa(cash.AccountID), "--amount", "5")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CLITestSuite) TestAmountWithTooManyDecimalsIsRejected() {
	_, err := suite.run("account", "add", "Cash", "--opening", "1.005")

	suite.Error(err)
	suite.Contains(err.Error(), "decimal places")
}

func (suite *CLITestSuite) TestUpdateKeepsUnspecifiedFields() {
	cash := suite.addAccount("Cash", "asset", "")
	var txn dto.TransactionResponse
	suite.mustJSON(&txn, "tx", "add", "--account", itoa(cash.AccountID), "--amount", "12",
		"--category", "Shopping", "--desc", "Socks", "--date", "2024-02-10")

	var updated dto.TransactionResponse
	suite.mustJSON(&updated, "tx", "update", itoa(txn.TransactionID), "--amount", "15")

	suite.Equal(int64(-1500), updated.Amount)
	suite.Equal("Shopping", updated.Category)
	suite.Equal("Socks", updated.Description)
	suite.Equal("2024-02-10", updated.Date.Format("2006-01-02"))
}

func (suite *CLITestSuite) TestCategoriesAndSummaries() {
	var cat domain.Category
	suite.mustJSON(&cat, "category", "add", "Gym", "--type", "expense")
	suite.Equal("Gym", cat.Name)

	cash := suite.addAccount("Cash", "asset", "")
	suite.mustJSON(&dto.TransactionResponse{}, "tx", "add", "--account", itoa(cash.AccountID), "--amount", "30",
		"--category", "Gym", "--date", "2024-04-02")
	suite.mustJSON(&dto.TransactionResponse{}, "tx", "add", "--account", itoa(cash.AccountID), "--amount", "500",
		"--category", "Income", "--date", "2024-03-01")

	_, err := suite.run("category", "delete", "Gym")
	suite.ErrorIs(err, apperrors.ErrConflict)

	var months []string
	suite.mustJSON(&months, "summary", "months")
	suite.Equal([]string{"2024-04", "2024-03"}, months)

	out, err := suite.run("summary", "all-time", "--query", "$.net")
	suite.Require().NoError(err)
	suite.Equal("47000", strings.TrimSpace(out))

	var totals []domain.CategoryAmount
	suite.mustJSON(&totals, "summary", "categories")
	suite.Equal([]domain.CategoryAmount{{Category: "Gym", Total: 3000}}, totals)
}

func (suite *CLITestSuite) TestContainersAreIsolated() {
	var business domain.Container
	suite.mustJSON(&business, "container", "add", "Business")
	suite.addAccount("Cash", "asset", "")

	var accounts []domain.Account
	suite.mustJSON(&accounts, "--container", itoa(business.ContainerID), "account", "list")
	suite.Empty(accounts)

	_, err := suite.run("container", "delete", "1")
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CLITestSuite) TestImportAndExport() {
	cash := suite.addAccount("Cash", "asset", "")
	csvPath := filepath.Join(suite.dir, "bank.csv")
	content := "Date,Description,Category,Amount\n" +
		"2024-03-07,Salary,Income,\"1,200.00\"\n" +
		"2024-03-08,Bus,Transportation,-2.40\n" +
		"not-a-date,Broken,Other,1\n"
	suite.Require().NoError(os.WriteFile(csvPath, []byte(content), 0o644))

	var result domain.ImportResult
	suite.mustJSON(&result, "import", csvPath, "--account", itoa(cash.AccountID))
	suite.Equal(2, result.SuccessCount)
	suite.Equal(1, result.ErrorCount)

	out, err := suite.run("export")
	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("ID,Date,Account,Amount,Description,Category,TransferGroup", lines[0])
	suite.Contains(out, "1200.00")
	suite.Contains(out, "-2.40")
}

func (suite *CLITestSuite) TestSettingsFileAndFormatting() {
	settingsFile := filepath.Join(suite.dir, "settings.yaml")

	var resp dto.DisplaySettingsResponse
	suite.mustJSON(&resp, "--settings-file", settingsFile, "settings", "set",
		"--currency", "eur", "--symbol", "€", "--placement", "after", "--locale", "de-DE")
	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal("1.234,56 €", resp.Example)

	raw, err := os.ReadFile(settingsFile)
	suite.Require().NoError(err)
	suite.Contains(string(raw), "EUR")

	suite.addAccount("Cash", "asset", "12.5")
	out, err := suite.run("--settings-file", settingsFile, "--plain", "account", "list")
	suite.Require().NoError(err)
	suite.Contains(out, "| Cash |")
	suite.Contains(out, "12,50 €")

	_, err = suite.run("--settings-file", settingsFile, "settings", "set", "--locale", "??")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CLITestSuite) TestToken() {
	_, err := suite.run("token")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.T().Setenv("JWT_SECRET", "cli-secret")
	out, err := suite.run("token", "--subject", "alice")
	suite.Require().NoError(err)

	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(out), "cli-secret")
	suite.Require().NoError(err)
	suite.Equal("alice", claims.Subject)
}

func (suite *CLITestSuite) TestConfigFileSelectsDatabase() {
	suite.T().Setenv("SQLITE_PATH", "")
	cfgPath := filepath.Join(suite.dir, "ledger.yaml")
	suite.Require().NoError(os.WriteFile(cfgPath, []byte("sqlite_path: "+suite.db+"\n"), 0o644))

	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "container", "list", "--json"})
	suite.Require().NoError(cmd.Execute())

	var containers []domain.Container
	suite.Require().NoError(json.Unmarshal(out.Bytes(), &containers))
	suite.Require().Len(containers, 1)
	suite.Equal("Personal", containers[0].Name)
	suite.FileExists(suite.db)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
