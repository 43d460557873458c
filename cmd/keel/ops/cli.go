package ops

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keelvm/keel/code"
)

type row struct {
	Code      string `csv:"code"`
	Name      string `csv:"name"`
	Immediate string `csv:"immediate"`
	Width     uint32 `csv:"width"`
	Pop0      string `csv:"pop0"`
	Pop1      string `csv:"pop1"`
	Push      string `csv:"push"`
}

func opRow(op code.Opcode) row {
	return row{
		Code:      fmt.Sprintf("0x%02x", op.Code),
		Name:      op.Name,
		Immediate: op.Immediate.String(),
		Width:     op.Immediate.Width(),
		Pop0:      op.Pop[0].String(),
		Pop1:      op.Pop[1].String(),
		Push:      op.Push.String(),
	}
}

func dumpOps(w io.Writer, ops []code.Opcode) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)
	for _, op := range ops {
		if err := encoder.Encode(opRow(op)); err != nil {
			return err
		}
	}
	return nil
}

func Command() *cobra.Command {
	var name string

	command := &cobra.Command{
		Use:   "ops",
		Short: "Dump the core instruction registry",
		Long:  "Dump the core instruction registry in CSV format, in mnemonic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			zap.L().Debug("dumping registry", zap.Int("assigned", code.Core.Assigned()))

			if name != "" {
				op, err := code.Core.ByName(name)
				if err != nil {
					return err
				}
				return dumpOps(os.Stdout, []code.Opcode{op})
			}
			return dumpOps(os.Stdout, code.Core.Sorted())
		},
	}

	command.PersistentFlags().StringVarP(&name, "name", "n", "", "dump only the instruction with this mnemonic")

	return command
}
