package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aradsms/pgphone/internal/phonenumber_service/domain"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <number>...",
		Short: "Validate phone numbers and print their groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := domain.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tarea_code=%d exchange=%d number=%d\n",
					p, p.AreaCode(), p.Exchange(), p.Number())
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <area_code> <exchange> <number>",
		Short: "Print the canonical form of three numeric groups",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var groups [3]uint16
			for i, arg := range args {
				v, err := strconv.ParseUint(arg, 10, 16)
				if err != nil {
					return fmt.Errorf("group %d: %w", i+1, err)
				}
				groups[i] = uint16(v)
			}
			p, err := domain.New(groups[0], groups[1], groups[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newRandomCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print uniformly random phone numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			next := domain.Random
			if cmd.Flags().Changed("seed") {
				next = domain.NewGenerator(seed, seed).Next
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), next())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many numbers to print")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible sequence")
	return cmd
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two phone numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := domain.Parse(args[1])
			if err != nil {
				return err
			}
			op := "="
			switch a.Compare(b) {
			case -1:
				op = "<"
			case 1:
				op = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", a, op, b)
			return nil
		},
	}
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <number>",
		Short: "Print the 64-bit and folded 32-bit hash of a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%016x %d\n", p.Hash(), p.Hash32())
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <number>",
		Short: "Print the binary encoding of a phone number as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			data, err := p.MarshalBinary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex binary encoding back to the canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decoding hex: %w", err)
			}
			var p domain.PhoneNumber
			if err := p.UnmarshalBinary(data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
