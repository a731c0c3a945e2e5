package kernelselector

import (
	"strconv"

	"github.com/cldnngo/cldnn/primitivekind"
)

// refCandidate is the single "always applicable" candidate attached to
// every family that has not (yet) grown a specialised variant — the
// kernel-selector analogue of original_source's *_kernel_ref.cpp classes,
// which every family attaches first as the fallback.
type refCandidate struct{ name string }

func (r refCandidate) Name() string { return r.name }
func (r refCandidate) Supports(primitivekind.LoweredParams) bool { return true }
func (r refCandidate) EstimateCost(primitivekind.LoweredParams) float64 { return 1.0 }

func vectorJit(params primitivekind.LoweredParams) *Table {
	t := NewTable(VectorFromTensor("OUTPUT", params.Output))
	for i, in := range params.Inputs {
		t.Add(VectorFromTensor("INPUT"+strconv.Itoa(i), in))
	}
	return t
}

// refFamily registers name with a single ref candidate whose source is the
// family's conventional reference-kernel body and whose jit table is the
// shape-only vectorJit default.
func refFamily(name, body string) {
	f := NewFamily(name, func(p primitivekind.LoweredParams, _ Candidate) *Table {
		return vectorJit(p)
	})
	f.Attach(refCandidate{name: "ref"})
	RegisterSource(name, "ref", body)
}

func init() {
	refFamily("eltwise", "eltwise_ref")
	refFamily("softmax", "softmax_ref")
	refFamily("activation", "activation_ref")
	refFamily("mean_subtract", "mean_subtract_ref")
	refFamily("normalize", "normalize_ref")
	refFamily("scale", "scale_ref")
	refFamily("crop", "crop_ref")
	refFamily("reorder", "reorder_ref")
	refFamily("reshape", "reshape_ref")
	refFamily("concatenation", "concatenation_ref")
	refFamily("pooling", "pooling_ref")
	refFamily("convolution", "convolution_ref")
	refFamily("deconvolution", "deconvolution_ref")
	refFamily("fully_connected", "fully_connected_ref")
	refFamily("batch_norm", "batch_norm_ref")
	refFamily("lrn", "lrn_ref")
	refFamily("permute", "permute_ref")
	refFamily("lookup_table", "lookup_table_ref")
	refFamily("index_select", "index_select_ref")
	refFamily("arg_extremum", "arg_extremum_ref")
	refFamily("upsampling", "upsampling_ref")
	refFamily("region_yolo", "region_yolo_ref")
	refFamily("prior_box", "prior_box_ref")
	refFamily("roi_pooling", "roi_pooling_ref")
	refFamily("simpler_nms", "simpler_nms_ref")
}
