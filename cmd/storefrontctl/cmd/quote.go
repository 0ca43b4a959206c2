package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
)

type quoteOptions struct {
	subtotal   string
	cartFile   string
	feeType    string
	flatFee    string
	perMileFee string
	perItemFee string
	threshold  string
	distance   string
	items      int
	format     string
}

func newQuoteCmd() *cobra.Command {
	defaults := config.Load().Delivery
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the delivery fee and total for a cart",
		Long: `Compute the delivery fee and order total.

The cart is either a bare --subtotal or a --cart JSON file holding
[{"product_id":1,"unit_price":"12.50","quantity":2}] or {"lines":[...]}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.subtotal, "subtotal", "", "cart subtotal")
	f.StringVar(&opts.cartFile, "cart", "", "JSON file with cart lines")
	f.StringVar(&opts.feeType, "fee-type", defaults.FeeType, "fee type (flat, per_mile, per_item, combined)")
	f.StringVar(&opts.flatFee, "flat-fee", defaults.FlatFee.String(), "flat delivery fee")
	f.StringVar(&opts.perMileFee, "per-mile-fee", defaults.PerMileFee.String(), "fee per mile")
	f.StringVar(&opts.perItemFee, "per-item-fee", defaults.PerItemFee.String(), "fee per item")
	f.StringVar(&opts.threshold, "threshold", defaults.FreeDeliveryThreshold.String(), "free delivery threshold")
	f.StringVar(&opts.distance, "distance", "", "delivery distance in miles")
	f.IntVar(&opts.items, "items", 0, "item count (defaults to the cart quantity sum)")
	f.StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")
	cmd.MarkFlagsMutuallyExclusive("subtotal", "cart")
	cmd.MarkFlagsOneRequired("subtotal", "cart")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	feeConfig, err := opts.feeConfig()
	if err != nil {
		return err
	}

	var subtotal decimal.Decimal
	var inputs model.DeliveryInputs
	if opts.cartFile != "" {
		lines, err := readCart(opts.cartFile)
		if err != nil {
			return err
		}
		if subtotal, err = service.Aggregate(lines); err != nil {
			return err
		}
		inputs = inputs.WithItemCount(service.CountItems(lines))
	} else if subtotal, err = parseAmount("subtotal", opts.subtotal); err != nil {
		return err
	}

	if cmd.Flags().Changed("items") {
		inputs = inputs.WithItemCount(opts.items)
	}
	if opts.distance != "" {
		miles, err := parseAmount("distance", opts.distance)
		if err != nil {
			return err
		}
		inputs = inputs.WithDistance(miles)
	}

	result, err := service.ComputeDelivery(subtotal, feeConfig, inputs)
	if err != nil {
		return err
	}
	return writeQuote(cmd.OutOrStdout(), opts.format, result)
}

func (o *quoteOptions) feeConfig() (model.FeeConfig, error) {
	feeType, ok := model.ParseFeeType(o.feeType)
	if !ok {
		return model.FeeConfig{}, fmt.Errorf("unsupported fee type %q", o.feeType)
	}
	cfg := model.FeeConfig{FeeType: feeType}

	amounts := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"flat-fee", o.flatFee, &cfg.FlatFee},
		{"per-mile-fee", o.perMileFee, &cfg.PerMileFee},
		{"per-item-fee", o.perItemFee, &cfg.PerItemFee},
		{"threshold", o.threshold, &cfg.FreeDeliveryThreshold},
	}
	for _, a := range amounts {
		d, err := parseAmount(a.name, a.value)
		if err != nil {
			return model.FeeConfig{}, err
		}
		*a.dst = d
	}
	return cfg, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, value)
	}
	return d, nil
}

// readCart accepts a JSON array of lines or an object with a "lines" array.
func readCart(path string) ([]model.CartLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	var req dto.CartSubtotalRequest
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &req.Lines)
	} else {
		err = json.Unmarshal(trimmed, &req)
	}
	if err != nil {
		return nil, fmt.Errorf("parse cart %s: %w", path, err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("cart %s: %w", path, err)
	}
	return req.CartLines(), nil
}

func writeQuote(w io.Writer, format string, r model.PricingResult) error {
	resp := dto.NewDeliveryQuoteResponse(r)
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Subtotal:\t%s\n", resp.Subtotal)
	fmt.Fprintf(tw, "Delivery fee:\t%s\t(%s)\n", resp.DeliveryFee, resp.FeeType)
	fmt.Fprintf(tw, "Total:\t%s\n", resp.Total)
	if resp.FreeDelivery {
		fmt.Fprintf(tw, "Free delivery:\tyes\n")
	} else {
		fmt.Fprintf(tw, "Free delivery:\tadd %s more\n", resp.FreeDeliveryRemaining)
	}
	return tw.Flush()
}
